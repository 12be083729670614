// Package config loads scribe settings from YAML.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config is the scribe configuration.
type Config struct {
	Version string        `yaml:"version"`
	Storage StorageConfig `yaml:"storage"`
	Editor  EditorConfig  `yaml:"editor"`
	Log     LogConfig     `yaml:"log"`
}

type StorageConfig struct {
	// Backend is one of memory, file, or sqlite.
	Backend string `yaml:"backend"`
	// Path is a directory for the file backend and a database file for
	// sqlite. A leading ~ expands to the home directory.
	Path string `yaml:"path"`
	Key  string `yaml:"key"`
}

type EditorConfig struct {
	HistoryLimit   int    `yaml:"history_limit"`
	Placeholder    string `yaml:"placeholder"`
	ShowBlockTypes bool   `yaml:"show_block_types"`
}

type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
	Verbose bool   `yaml:"verbose"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := *defaults
	return &cfg
}

// Load reads the file at path on top of the defaults. A missing file is not
// an error; the defaults are returned as is.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	return ParseYAML(data)
}

// ParseYAML parses data on top of the defaults and validates the result.
func ParseYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal yaml")
	}
	if err := validate(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to validate config")
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Version {
	case "", "v1":
	default:
		return errors.Errorf("unknown version: %s", cfg.Version)
	}

	switch cfg.Storage.Backend {
	case BackendMemory:
	case BackendFile, BackendSQLite:
		if cfg.Storage.Path == "" {
			return errors.Errorf("storage backend %s requires a path", cfg.Storage.Backend)
		}
	default:
		return errors.Errorf("unknown storage backend: %q", cfg.Storage.Backend)
	}
	if cfg.Storage.Key == "" {
		return errors.New("storage key is empty")
	}
	if cfg.Editor.HistoryLimit < 0 {
		return errors.Errorf("history_limit must not be negative: %d", cfg.Editor.HistoryLimit)
	}
	return nil
}

// StoragePath returns Storage.Path with a leading ~ expanded.
func (c *Config) StoragePath() (string, error) {
	return expandHome(c.Storage.Path)
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WithStack(err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
