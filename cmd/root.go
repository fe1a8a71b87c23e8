package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gostud/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gostud",
	Short: "Wood Stud Wall Design Tool",
	Long: `gostud - Go Wood Stud Wall Designer

A CLI tool for the design of load-bearing wood stud walls
based on the Canadian wood design standard CSA O86-20.

This tool helps structural engineers perform:
  - Load accumulation for multi-story bearing walls
  - Factored load combinations with duration classification
  - Axial compressive resistance checks (slenderness, stability)
  - Exhaustive stud/spacing/ply optimization per level

All calculations follow CSA O86-20 provisions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gostud v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Wood Stud Wall Designer                              ║")
		fmt.Printf("  ║   %s ©  %s                             ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the design of load-bearing wood stud walls")
		fmt.Println("  based on the Canadian wood design standard CSA O86-20.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Cumulative load takedown for multi-story walls")
		fmt.Println("    • Factored load combinations with load-duration factors")
		fmt.Println("    • Compressive resistance per Clause 6.5.6.2.3")
		fmt.Println("    • Optimal stud, spacing and ply selection per level")
		fmt.Println()
		fmt.Println("  Use 'gostud --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
