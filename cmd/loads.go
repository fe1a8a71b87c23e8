package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gostud/internal/design"
	"github.com/alexiusacademia/gostud/internal/o86"
	"github.com/alexiusacademia/gostud/internal/units"
	"github.com/spf13/cobra"
)

var loadsInput wallInput

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Calculate cumulative and factored loads for a stud wall",
	Long: `Calculate the cumulative unfactored line loads (DL, LL, SL) for every
level of a multi-story stud wall, and the factored line loads for the
standard gravity load combinations.

Loads accumulate from the roof down: each level carries its own
tributary loads plus everything above it.

Examples:
  # Single story, imperial inputs
  gostud loads --heights 10 --roof-dead 20 --roof-snow 40 --sw 15 --roof-trib 10 --imperial

  # Three stories, metric inputs (mm, kPa, m)
  gostud loads --heights 3000,3000,3000 --roof-dead 1.0 --roof-snow 1.9 \
    --floor-dead 1.7 --floor-live 1.9 --partitions 1.0 --sw 0.7 \
    --roof-trib 3 --floor-trib 3.4`,
	RunE: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)
	addWallFlags(loadsCmd, &loadsInput)
}

func runLoads(cmd *cobra.Command, args []string) error {
	w, err := loadsInput.buildWall()
	if err != nil {
		return err
	}
	if err := w.Validate(); err != nil {
		return err
	}

	loads := design.AccumulateLoads(w)
	factored := design.FactorLoads(loads, o86.DefaultCombinations)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          CSA O86-20 STUD WALL LOAD TAKEDOWN")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printLoadTable(loads)
	printComboTable(factored)
	return nil
}

func printLoadTable(loads []design.LevelLoads) {
	fmt.Println("CUMULATIVE UNFACTORED LINE LOADS (kN/m):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Level\tDL\tLL\tSL\n")
	fmt.Fprintf(w, "  ─────\t──\t──\t──\n")
	for i, lv := range loads {
		fmt.Fprintf(w, "  %d\t%.3f\t%.3f\t%.3f\n", i+1, lv.DL, lv.LL, lv.SL)
	}
	w.Flush()
	fmt.Println()
}

func printComboTable(factored [][]design.FactoredLoad) {
	fmt.Println("FACTORED LINE LOADS PER COMBINATION (kN/m):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for level, row := range factored {
		// The maximum factored line load marks the likely governing
		// combination before duration effects are applied.
		maxIdx := 0
		for j, fl := range row {
			if fl.Load > row[maxIdx].Load {
				maxIdx = j
			}
		}
		fmt.Fprintf(w, "  Level %d\t\t\n", level+1)
		for j, fl := range row {
			marker := ""
			if j == maxIdx {
				marker = " ← MAX"
			}
			fmt.Fprintf(w, "    %s\t%.3f%s\n", fl.Combo.Name, fl.Load, marker)
		}
	}
	w.Flush()
	fmt.Println()
}

// displaySpacing formats a spacing in the active unit system.
func displaySpacing(sys units.System, spacing float64) string {
	return fmt.Sprintf("%.0f %s o/c", sys.FromMetric(spacing, units.LengthIn), sys.Label(units.LengthIn))
}
