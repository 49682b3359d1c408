package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pymk/pymk/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pymk %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
