package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(readCmd)
}

var readCmd = &cobra.Command{
	Use:   "read ID",
	Short: "Print a post's title and body",
	Args:  exactlyOneID,
	RunE:  runRead,
}

func runRead(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	db, err := openDatabase(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	p, err := db.FindByID(cmd.Context(), id)
	if err != nil {
		return err
	}
	return printPost(p)
}
