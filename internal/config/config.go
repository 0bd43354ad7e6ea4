// Package config loads uranai's settings from a YAML file and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// Dataset backends.
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// ValidBackends lists the accepted dataset backends.
var ValidBackends = []string{BackendCSV, BackendSQLite}

// ValidLevels lists the accepted log levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// ValidFormats lists the accepted log formats.
var ValidFormats = []string{"json", "console"}

// Config is the top-level configuration.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Logging LoggingConfig `yaml:"logging"`
}

// DatasetConfig selects and tunes the animal dataset source.
type DatasetConfig struct {
	// Backend is "csv" to read CSVPath directly or "sqlite" to read rows
	// previously imported into DBPath.
	Backend string `yaml:"backend"`
	CSVPath string `yaml:"csv_path"`
	DBPath  string `yaml:"db_path"`
	// Cache keeps one snapshot in memory instead of re-reading per lookup.
	Cache bool `yaml:"cache"`
	// Watch reloads the snapshot when CSVPath changes (serve only).
	Watch    bool          `yaml:"watch"`
	Debounce time.Duration `yaml:"debounce"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultDir returns ~/.uranai.
func DefaultDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".uranai")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// Default returns the built-in configuration.
func Default() *Config {
	dir := DefaultDir()
	return &Config{
		Dataset: DatasetConfig{
			Backend:  BackendCSV,
			CSVPath:  filepath.Join(dir, "animals.csv"),
			DBPath:   filepath.Join(dir, "animals.db"),
			Cache:    true,
			Watch:    true,
			Debounce: 500 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads path over the defaults and applies environment overrides. A
// missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("URANAI_DATASET"); v != "" {
		c.Dataset.CSVPath = v
	}
	if v := os.Getenv("URANAI_DB"); v != "" {
		c.Dataset.DBPath = v
	}
	if v := os.Getenv("URANAI_BACKEND"); v != "" {
		c.Dataset.Backend = v
	}
	if v := os.Getenv("URANAI_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("URANAI_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
}

// Validate checks enumerated fields and required paths.
func (c *Config) Validate() error {
	if !slices.Contains(ValidBackends, c.Dataset.Backend) {
		return fmt.Errorf("config: invalid dataset backend %q (valid: %v)", c.Dataset.Backend, ValidBackends)
	}
	if c.Dataset.Backend == BackendSQLite && c.Dataset.DBPath == "" {
		return fmt.Errorf("config: sqlite backend needs dataset.db_path")
	}
	if c.Dataset.Debounce < 0 {
		return fmt.Errorf("config: negative dataset.debounce %s", c.Dataset.Debounce)
	}
	if !slices.Contains(ValidLevels, c.Logging.Level) {
		return fmt.Errorf("config: invalid log level %q (valid: %v)", c.Logging.Level, ValidLevels)
	}
	if !slices.Contains(ValidFormats, c.Logging.Format) {
		return fmt.Errorf("config: invalid log format %q (valid: %v)", c.Logging.Format, ValidFormats)
	}
	return nil
}

// Save writes the configuration as YAML, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
