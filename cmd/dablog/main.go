// Package main provides the dablog CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dablog/dablog/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time via ldflags
var Version = "0.1.0"

var (
	dbFlag      string
	jsonOutput  bool
	verbose     bool
	showVersion bool
)

// logger is replaced in PersistentPreRunE when --verbose is given.
var logger = zap.NewNop()

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes one command and returns the process exit code.
func run(args []string) int {
	if args == nil {
		args = []string{}
	}

	// An interrupt cancels the context, which kills a running editor and lets
	// deferred cleanup of the scratch file run before exiting.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	_ = logger.Sync()
	if err == nil {
		return ExitSuccess
	}
	return reportError(err)
}

var rootCmd = &cobra.Command{
	Use:   "dablog",
	Short: "A tiny journal kept in a local SQLite file",
	Long: `dablog stores short text posts in a local SQLite database.

Posts are written in your $EDITOR and read back by id:
  dablog init
  dablog create
  dablog read ID
  dablog update ID
  dablog delete ID
  dablog build

The database is dablog.db in the current directory unless --db,
$DABLOG_DB or db_path in ~/.config/dablog/config.yml says otherwise.`,
	Args:              rootArgs,
	PersistentPreRunE: setup,
	RunE:              runRoot,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "Path to the database file (default: ./dablog.db)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log debug output to stderr")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newUsageError(cmd, "%v", err)
	})
}

// setup loads .env and builds the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		logger = l
	}

	if err := config.LoadDotEnv("."); err != nil {
		logger.Warn("ignoring .env", zap.Error(err))
	}
	return nil
}

func rootArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return newUsageError(cmd, "unknown command %q", args[0])
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if showVersion {
		fmt.Fprintf(stderr, "dablog v%s\n", Version)
		return nil
	}
	return newUsageError(cmd, "no command given")
}
