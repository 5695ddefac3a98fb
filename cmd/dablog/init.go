package main

import (
	"fmt"
	"time"

	"github.com/dablog/dablog/internal/post"
	"github.com/dablog/dablog/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database and a first post",
	Long: `Create the database file and the posts table, then write a
"Hello, World!" post.

Fails if the database already has a posts table.`,
	Args: noArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := storage.Initialize(cmd.Context(), cfg.DBPath, storage.WithLogger(logger))
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := db.Insert(cmd.Context(), post.Seed(time.Now()))
	if err != nil {
		return fmt.Errorf("writing first post: %w", err)
	}
	logger.Info("initialized dablog", zap.String("path", cfg.DBPath), zap.Int64("seed_id", id))

	if jsonOutput {
		return outputJSON(StatusResponse{Status: "initialized", ID: id, Path: cfg.DBPath})
	}
	return nil
}

// noArgs rejects positional arguments with a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return newUsageError(cmd, "%s takes no arguments", cmd.Name())
	}
	return nil
}
