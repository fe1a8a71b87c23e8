package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gostud/internal/catalog"
	"github.com/alexiusacademia/gostud/internal/store"
	"github.com/spf13/cobra"
)

var (
	catalogDB   string
	catalogSeed bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the stud catalog used by the design search",
	Long: `List the stud catalog: every (section, material) pair the design
search will enumerate.

By default the built-in catalog is shown. With --db the catalog is read
from a SQLite library database instead; --seed writes the built-in
catalog into that database first.

Examples:
  gostud catalog
  gostud catalog --db library.db --seed
  gostud catalog --db library.db`,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVar(&catalogDB, "db", "", "SQLite library database path")
	catalogCmd.Flags().BoolVar(&catalogSeed, "seed", false, "Seed the database with the built-in catalog")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(catalogDB, catalogSeed)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("STUD CATALOG:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Stud\tSection\tSpecies\tGrade\tType\tfc (MPa)\tE05 (MPa)\n")
	fmt.Fprintf(w, "  ────\t───────\t───────\t─────\t────\t────────\t─────────\n")
	for _, s := range cat.Studs {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%.1f\t%.0f\n",
			s.Name, s.Section.Name(), s.Material.Species, s.Material.Grade,
			s.Material.MaterialType, s.Material.Fc, s.Material.E05)
	}
	w.Flush()
	fmt.Println()
	return nil
}

// loadCatalog returns the working catalog: the library database when
// a path is given, the built-in defaults otherwise. An empty database
// falls back to the built-in catalog unless seeding was requested.
func loadCatalog(dbPath string, seed bool) (catalog.Catalog, error) {
	if dbPath == "" {
		return catalog.Default(), nil
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return catalog.Catalog{}, err
	}
	defer st.Close()

	if seed {
		if err := st.SeedCatalog(catalog.Default()); err != nil {
			return catalog.Catalog{}, fmt.Errorf("seed catalog: %w", err)
		}
	}

	cat, err := st.LoadCatalog()
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	if len(cat.Studs) == 0 && !seed {
		return catalog.Default(), nil
	}
	if err := cat.Validate(); err != nil {
		return catalog.Catalog{}, fmt.Errorf("catalog in %s: %w", dbPath, err)
	}
	return cat, nil
}
