package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/alexiusacademia/gostud/internal/design"
	"github.com/alexiusacademia/gostud/internal/diagram"
	"github.com/alexiusacademia/gostud/internal/store"
	"github.com/alexiusacademia/gostud/internal/units"
	"github.com/spf13/cobra"
)

var (
	wallDesignInput wallInput

	// Options
	wallDesignShowAll     bool
	wallDesignShowDiagram bool
	wallDesignExportFile  string
	wallDesignDB          string
)

var wallDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Find the optimal stud configuration for every level",
	Long: `Run the complete stud wall design: accumulate loads from the roof
down, factor them for every gravity load combination, and search the
stud catalog (section × spacing × plys) for the lightest configuration
whose governing demand/capacity ratio stays below 1.0.

A level for which no catalog entry works is reported as having no
adequate design; it is not an error.

Examples:
  # Single-story wall, imperial inputs
  gostud wall design --heights 10 --roof-dead 20 --roof-snow 40 --sw 15 \
    --roof-trib 10 --imperial

  # Three stories, metric, persist results
  gostud wall design --heights 3000,3000,3000 --roof-dead 1.0 --roof-snow 1.9 \
    --floor-dead 1.7 --floor-live 1.9 --partitions 1.0 --sw 0.7 \
    --roof-trib 3 --floor-trib 3.4 --db results.db`,
	RunE: runWallDesign,
}

func init() {
	wallCmd.AddCommand(wallDesignCmd)

	addWallFlags(wallDesignCmd, &wallDesignInput)

	// Options
	wallDesignCmd.Flags().BoolVarP(&wallDesignShowAll, "all", "a", false, "Show every evaluated candidate per level")
	wallDesignCmd.Flags().BoolVar(&wallDesignShowDiagram, "diagram", false, "Show ASCII load profile and selected section sketch")
	wallDesignCmd.Flags().StringVarP(&wallDesignExportFile, "output", "o", "", "Export load profile diagram to file (png, svg, pdf)")
	wallDesignCmd.Flags().StringVar(&wallDesignDB, "db", "", "SQLite database to persist results (also used as stud library if seeded)")
}

func runWallDesign(cmd *cobra.Command, args []string) error {
	w, err := wallDesignInput.buildWall()
	if err != nil {
		return err
	}

	cat, err := loadCatalog(wallDesignDB, false)
	if err != nil {
		return err
	}

	designer := design.NewDesigner(cat)
	run, err := designer.Design(w)
	if err != nil {
		return err
	}

	sys := wallDesignInput.system()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          STUD WALL DESIGN - CSA O86-20")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printLoadTable(run.Loads)
	printComboTable(run.Factored)

	if wallDesignShowDiagram {
		fmt.Println(diagram.LoadProfile(run.Loads))
		fmt.Println()
	}

	for _, lr := range run.Levels {
		fmt.Printf("LEVEL %d (%s):\n", lr.Level+1, lr.Story.Name)
		fmt.Println("───────────────────────────────────────────────────────────────")

		if wallDesignShowAll {
			printCandidates(sys, lr)
		}

		if lr.Optimal == nil {
			fmt.Println("  No adequate design found.")
			fmt.Println()
			continue
		}

		opt := *lr.Optimal
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  Stud:\t%s\n", opt.Stud.DisplayName(opt.Plys))
		fmt.Fprintf(tw, "  Material:\t%s\n", opt.Stud.Material.Name)
		fmt.Fprintf(tw, "  Spacing:\t%s\n", displaySpacing(sys, opt.Spacing))
		fmt.Fprintf(tw, "  Governing Combo:\t%s\n", opt.GoverningCombo)
		fmt.Fprintf(tw, "  Factored Load (Pf):\t%.2f %s\n", sys.FromMetric(opt.Pf, units.Load), sys.Label(units.Load))
		fmt.Fprintf(tw, "  Factored Resistance (Pr):\t%.2f %s\n", sys.FromMetric(opt.Pr, units.Load), sys.Label(units.Load))
		fmt.Fprintf(tw, "  DC Ratio:\t%.2f\n", opt.DCRatio)
		fmt.Fprintf(tw, "  Kd:\t%.3f\n", opt.KFactors.Kd)
		fmt.Fprintf(tw, "  Wood Volume Proxy:\t%.2f mm\n", opt.WoodVolume)
		tw.Flush()

		if wallDesignShowDiagram {
			fmt.Println()
			fmt.Println(diagram.StudSketch(opt.Section))
		}
		fmt.Println()
	}

	if wallDesignExportFile != "" {
		if err := diagram.ExportLoadProfile(run.Loads, wallDesignExportFile); err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		fmt.Printf("  Load profile exported to %s\n\n", wallDesignExportFile)
	}

	if wallDesignDB != "" {
		st, err := store.Open(wallDesignDB)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.SaveRun(run); err != nil {
			return fmt.Errorf("persist results: %w", err)
		}
		fmt.Printf("  Results saved to %s\n\n", wallDesignDB)
	}

	return nil
}

func printCandidates(sys units.System, lr design.LevelResult) {
	ranked := make([]design.DesignResult, len(lr.Candidates))
	copy(ranked, lr.Candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].WoodVolume < ranked[j].WoodVolume
	})

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Stud\tSpacing\tWood Volume\tDC Ratio\tStatus\n")
	fmt.Fprintf(tw, "  ────\t───────\t───────────\t────────\t──────\n")
	for _, c := range ranked {
		status := "Fail"
		if c.Valid() {
			status = "Pass"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%.2f\t%.2f\t%s\n",
			c.Stud.DisplayName(c.Plys), displaySpacing(sys, c.Spacing),
			c.WoodVolume, c.DCRatio, status)
	}
	tw.Flush()
	fmt.Println()
}
