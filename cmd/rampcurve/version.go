package main

import (
	"fmt"

	"github.com/cubeworks/rampcurve/internal/version"
	"github.com/spf13/cobra"
)

// versionCmd implements the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rampcurve",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Get().Full())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
