package main

import (
	"os"
	"time"

	"github.com/dablog/dablog/internal/editor"
	"github.com/dablog/dablog/internal/post"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Write a new post in $EDITOR",
	Long: `Open $EDITOR on an empty scratch file and store what you save as a new
post titled "Untitled post". The scratch file is removed afterwards.

The editor may also be set with "editor:" in ~/.config/dablog/config.yml.`,
	Args: noArgs,
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	editorCmd, err := editor.Resolve(cfg.Editor, os.Getenv)
	if err != nil {
		return err
	}

	// Fail on a missing database before the user spends time writing.
	db, err := openDatabase(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	bridge := editor.New(editorCmd, logger)
	body, err := bridge.Run(cmd.Context())
	if err != nil {
		return err
	}

	id, err := db.Insert(cmd.Context(), post.Untitled(body, time.Now()))
	if err != nil {
		return err
	}
	logger.Info("created post", zap.Int64("id", id))

	if jsonOutput {
		return outputJSON(StatusResponse{Status: "created", ID: id})
	}
	return nil
}
