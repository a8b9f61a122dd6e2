package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abhisek/quizdeck/internal/catalog"
	"github.com/abhisek/quizdeck/internal/store"
)

// Config holds runtime configuration.
type Config struct {
	// DBPath is the SQLite file holding history and preferences.
	DBPath string

	// CatalogSource is an http(s) URL or file path for the live catalog.
	// Empty means the embedded catalog is used.
	CatalogSource string

	// CatalogTimeout bounds the single catalog retrieval. Default: 5s.
	CatalogTimeout time.Duration

	// LogPath receives diagnostics while the terminal UI is running.
	// Default: quizdeck.log next to DBPath.
	LogPath string

	// ServeAddr is the listen address for `catalog serve`. Default: ":8080".
	ServeAddr string
}

// Overrides are command-line values that take precedence over the
// environment. Empty fields are ignored.
type Overrides struct {
	DBPath        string
	CatalogSource string
}

// DefaultConfig returns a Config with defaults for everything except paths.
func DefaultConfig() Config {
	return Config{
		CatalogTimeout: catalog.DefaultTimeout,
		ServeAddr:      ":8080",
	}
}

// FromEnv builds a Config from environment variables. Paths that are not
// set stay empty until Resolve fills them.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()

	cfg.DBPath = os.Getenv("QUIZDECK_DB")
	cfg.CatalogSource = os.Getenv("QUIZDECK_CATALOG")
	cfg.LogPath = os.Getenv("QUIZDECK_LOG")

	if v := os.Getenv("QUIZDECK_CATALOG_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("QUIZDECK_CATALOG_TIMEOUT: invalid duration %q", v)
		}
		cfg.CatalogTimeout = d
	}

	if a := os.Getenv("QUIZDECK_ADDR"); a != "" {
		cfg.ServeAddr = a
	}

	return cfg, nil
}

// Load reads the environment, applies o, and resolves default paths.
func Load(o Overrides) (Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return cfg, err
	}
	if o.DBPath != "" {
		cfg.DBPath = o.DBPath
	}
	if o.CatalogSource != "" {
		cfg.CatalogSource = o.CatalogSource
	}
	return cfg.Resolve()
}

// Resolve fills in the default DB and log paths and creates the DB's
// parent directory.
func (c Config) Resolve() (Config, error) {
	if c.DBPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return c, fmt.Errorf("resolve DB path: %w", err)
		}
		c.DBPath = p
	} else if err := store.EnsureDir(c.DBPath); err != nil {
		return c, fmt.Errorf("resolve DB path: %w", err)
	}

	if c.LogPath == "" {
		c.LogPath = filepath.Join(filepath.Dir(c.DBPath), "quizdeck.log")
	}
	return c, nil
}
