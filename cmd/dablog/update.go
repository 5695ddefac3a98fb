package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Edit an existing post (not supported yet)",
	Args:  exactlyOneID,
	RunE: func(cmd *cobra.Command, args []string) error {
		return unsupported("update")
	},
}
