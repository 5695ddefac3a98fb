package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the journal (not supported yet)",
	Args:  noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return unsupported("build")
	},
}
