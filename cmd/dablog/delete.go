package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a post",
	Long: `Delete a post permanently. Deleting an id that does not exist is not an
error. Ids are never reused.`,
	Args: exactlyOneID,
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	db, err := openDatabase(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.DeleteByID(cmd.Context(), id); err != nil {
		return err
	}
	logger.Info("deleted post", zap.Int64("id", id))

	if jsonOutput {
		return outputJSON(StatusResponse{Status: "deleted", ID: id})
	}
	return nil
}
