package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gostud/internal/catalog"
	"github.com/alexiusacademia/gostud/internal/model"
	"github.com/alexiusacademia/gostud/internal/o86"
	"github.com/spf13/cobra"
)

var (
	resWidth    float64
	resDepth    float64
	resPlys     int
	resLuWidth  float64
	resLuDepth  float64
	resMaterial string
	resFc       float64
	resE05      float64
	resType     string
	resDuration string
	resPl       float64
	resPs       float64
)

var resistanceCmd = &cobra.Command{
	Use:   "resistance",
	Short: "Calculate the factored compressive resistance of a stud",
	Long: `Calculate the factored axial compressive resistance (Pr) of a single
built-up stud about both buckling axes per CSA O86-20 Clause 6.5.6.2.3.

The material is taken from the built-in catalog by name, or specified
directly with --fc and --e05.

Examples:
  # 2-ply 38x140 SPF stud, 3 m tall, sheathing braced
  gostud resistance --width 38 --depth 140 --plys 2 --lu-depth 3000 --material "SPF No.1/No.2"

  # Explicit material properties, permanent load
  gostud resistance --width 38 --depth 89 --lu-depth 2440 --fc 11.5 --e05 6500 --duration Long`,
	RunE: runResistance,
}

func init() {
	rootCmd.AddCommand(resistanceCmd)

	// Geometry flags
	resistanceCmd.Flags().Float64VarP(&resWidth, "width", "b", 38, "Single-ply width (mm)")
	resistanceCmd.Flags().Float64VarP(&resDepth, "depth", "d", 89, "Section depth (mm)")
	resistanceCmd.Flags().IntVar(&resPlys, "plys", 1, "Number of plys (1-3)")
	resistanceCmd.Flags().Float64Var(&resLuWidth, "lu-width", 152, "Weak-axis unbraced length (mm)")
	resistanceCmd.Flags().Float64Var(&resLuDepth, "lu-depth", 0, "Strong-axis unbraced length (mm) [required]")

	// Material flags
	resistanceCmd.Flags().StringVarP(&resMaterial, "material", "m", "SPF No.1/No.2", "Catalog material name")
	resistanceCmd.Flags().Float64Var(&resFc, "fc", 0, "Compressive strength fc (MPa), overrides --material")
	resistanceCmd.Flags().Float64Var(&resE05, "e05", 0, "Fifth percentile modulus E05 (MPa), overrides --material")
	resistanceCmd.Flags().StringVar(&resType, "type", "Sawn", "Material type: Sawn, MSR or MEL")

	// Load duration flags
	resistanceCmd.Flags().StringVar(&resDuration, "duration", "Standard", "Load duration class: Short, Standard or Long")
	resistanceCmd.Flags().Float64Var(&resPl, "pl", 0, "Long-term load component (kN)")
	resistanceCmd.Flags().Float64Var(&resPs, "ps", 0, "Short-term load component (kN)")

	resistanceCmd.MarkFlagRequired("lu-depth")
}

func runResistance(cmd *cobra.Command, args []string) error {
	mat, err := resolveMaterial()
	if err != nil {
		return err
	}

	sec := model.Section{
		Width:   resWidth,
		Depth:   resDepth,
		Plys:    resPlys,
		LuWidth: resLuWidth,
		LuDepth: resLuDepth,
	}

	kd := o86.DurationFactor(o86.DurationClass(resDuration), resPl, resPs)
	k := o86.DefaultKFactors(kd)
	governing, width, depth := o86.MemberResistance(sec, mat, k)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     COMPRESSIVE RESISTANCE - CSA O86-20 CL 6.5.6.2.3")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Section:\t%s, %d ply(s)\n", sec.Name(), sec.Plys)
	fmt.Fprintf(w, "  Gross Area (Ag):\t%.0f mm²\n", sec.Ag())
	fmt.Fprintf(w, "  Unbraced Lengths:\t%.0f / %.0f mm (weak/strong)\n", sec.LuWidth, sec.LuDepth)
	fmt.Fprintf(w, "  Material:\t%s (%s)\n", mat.Name, mat.MaterialType)
	fmt.Fprintf(w, "  fc:\t%.1f MPa\n", mat.Fc)
	fmt.Fprintf(w, "  E05:\t%.0f MPa\n", mat.E05)
	fmt.Fprintf(w, "  Kd:\t%.3f\n", kd)
	w.Flush()
	fmt.Println()

	fmt.Println("RESISTANCE PER BUCKLING AXIS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Axis\tCc\tKzc\tKc\tPr (kN)\n")
	fmt.Fprintf(w, "  ────\t──\t───\t──\t───────\n")
	printAxis(w, "Weak (width)", width, governing)
	printAxis(w, "Strong (depth)", depth, governing)
	w.Flush()
	fmt.Println()

	if governing.Cc > o86.MaxSlenderness {
		fmt.Printf("  Slenderness Cc = %.1f exceeds the limit of %.0f: member rejected.\n", governing.Cc, o86.MaxSlenderness)
		fmt.Println()
	}

	fmt.Printf("  ╔═══════════════════════════════════════╗\n")
	fmt.Printf("  ║  FACTORED RESISTANCE (Pr) = %.2f kN  \n", governing.Pr/1000)
	fmt.Printf("  ╚═══════════════════════════════════════╝\n")
	fmt.Println()
	return nil
}

func printAxis(w *tabwriter.Writer, name string, r, governing o86.Resistance) {
	marker := ""
	if r == governing {
		marker = " ← GOVERNS"
	}
	fmt.Fprintf(w, "  %s\t%.2f\t%.3f\t%.3f\t%.2f%s\n", name, r.Cc, r.Kzc, r.Kc, r.Pr/1000, marker)
}

func resolveMaterial() (model.Wood, error) {
	if resFc > 0 || resE05 > 0 {
		return model.Wood{
			Name:         "custom",
			Fc:           resFc,
			E05:          resE05,
			MaterialType: model.MaterialType(resType),
		}, nil
	}
	for _, s := range catalog.Default().Studs {
		if s.Material.Name == resMaterial {
			return s.Material, nil
		}
	}
	return model.Wood{}, fmt.Errorf("unknown material %q; use 'gostud catalog' to list materials", resMaterial)
}
