package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all posts",
	Long:  `List all posts in id order: id, creation time (local) and title.`,
	Args:  noArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := openDatabase(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	posts, err := db.List(cmd.Context())
	if err != nil {
		return err
	}
	return printPostList(posts)
}
