package cmd

import (
	"github.com/spf13/cobra"
)

var wallCmd = &cobra.Command{
	Use:   "wall",
	Short: "Multi-story stud wall design",
	Long: `Design load-bearing stud walls based on CSA O86-20 provisions.

Subcommands:
  design   - Find the optimal stud, spacing and ply count per level

Loads accumulate from the roof down; every level is checked against the
standard gravity load combinations and the lightest compliant
configuration is selected.`,
}

func init() {
	rootCmd.AddCommand(wallCmd)
}
