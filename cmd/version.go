package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gostud/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gostud",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gostud v%s\n", version.Version)
		fmt.Println("Wood Stud Wall Design Tool")
		fmt.Println("Based on CSA O86-20 (Engineering Design in Wood, Canada)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
