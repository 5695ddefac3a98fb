package main

import (
	"os"

	"github.com/dablog/dablog/internal/config"
	"github.com/dablog/dablog/internal/editor"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Show which database file and editor dablog would use, and where the
database path came from (flag, env, file or default).

Settings live in ~/.config/dablog/config.yml:
  db_path: ~/journal/dablog.db
  editor: nvim`,
	Args: noArgs,
	RunE: runConfig,
}

// ConfigResponse is the response for the config command.
type ConfigResponse struct {
	DBPath       string `json:"db_path"`
	DBPathSource string `json:"db_path_source"`
	Editor       string `json:"editor,omitempty"`
	ConfigFile   string `json:"config_file"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	resp := ConfigResponse{
		DBPath:       cfg.DBPath,
		DBPathSource: cfg.Source,
		ConfigFile:   config.GlobalConfigPath(),
	}
	if ed, err := editor.Resolve(cfg.Editor, os.Getenv); err == nil {
		resp.Editor = ed
	}

	if jsonOutput {
		return outputJSON(resp)
	}

	ed := resp.Editor
	if ed == "" {
		ed = "(not set)"
	}
	outputHuman("db:     %s (%s)\n", resp.DBPath, resp.DBPathSource)
	outputHuman("editor: %s\n", ed)
	outputHuman("config: %s\n", resp.ConfigFile)
	return nil
}
