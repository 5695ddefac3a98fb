// Package config resolves where dablog keeps its database and which editor it runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config is the resolved configuration for one invocation.
type Config struct {
	DBPath string `json:"db_path"`
	Editor string `json:"editor,omitempty"` // from the config file; $EDITOR is consulted later
	Source string `json:"db_path_source"`   // flag, env, file or default
}

const (
	// DefaultDBFile is created in the working directory when nothing else is configured.
	DefaultDBFile = "dablog.db"
	// EnvDBPath overrides the database location.
	EnvDBPath = "DABLOG_DB"
	// DotEnvFile is loaded from the working directory before resolving.
	DotEnvFile = ".env"
)

// Sources of the database path, in decreasing precedence.
const (
	SourceFlag    = "flag"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// LoadDotEnv loads dir/.env into the process environment.
// Variables that are already set are left alone; a missing file is not an error.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, DotEnvFile)
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Resolve builds the configuration. flagDB is the value of --db (empty if unset).
// Precedence for the database path: flag, $DABLOG_DB, db_path in the global
// config file, then dablog.db in the working directory.
func Resolve(flagDB string, getenv func(string) string) (*Config, error) {
	global, err := LoadGlobalConfigFrom(GlobalConfigPathFrom(getenv))
	if err != nil {
		return nil, err
	}

	cfg := &Config{Editor: global.Editor}
	switch {
	case flagDB != "":
		cfg.DBPath, cfg.Source = flagDB, SourceFlag
	case getenv(EnvDBPath) != "":
		cfg.DBPath, cfg.Source = getenv(EnvDBPath), SourceEnv
	case global.DBPath != "":
		cfg.DBPath, cfg.Source = global.DBPath, SourceFile
	default:
		cfg.DBPath, cfg.Source = DefaultDBFile, SourceDefault
	}
	cfg.DBPath = ExpandPath(cfg.DBPath)

	return cfg, nil
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
