// Package config loads runtime settings from an optional YAML file and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings.
type Config struct {
	// DBPath is the SQLite file backing the store.
	DBPath string
	// Currency is the symbol prefixed to amounts in the UI.
	Currency string
	Debug    bool
}

// fileConfig is the YAML shape of the config file. Absent keys leave the
// default in place.
type fileConfig struct {
	DBPath   *string `yaml:"db_path"`
	Currency *string `yaml:"currency"`
	Debug    *bool   `yaml:"debug"`
}

const appDir = ".idlewage"

func homeJoin(name string) string {
	p := filepath.Join(appDir, name)
	if home, err := os.UserHomeDir(); err == nil {
		p = filepath.Join(home, p)
	}
	return p
}

// DefaultConfig returns the settings used when neither a config file nor
// environment overrides are present. The database lives under the user's
// home directory when it can be found.
func DefaultConfig() Config {
	return Config{
		DBPath:   homeJoin("idlewage.db"),
		Currency: "RM",
	}
}

// Path is the config file location: IDLEWAGE_CONFIG, or config.yaml next to
// the default database.
func Path() string {
	if v := os.Getenv("IDLEWAGE_CONFIG"); v != "" {
		return v
	}
	return homeJoin("config.yaml")
}

// LoadConfig layers the config file (if any) and then IDLEWAGE_* environment
// variables over the defaults. A missing file is not an error.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	path := Path()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
		fc.apply(&cfg)
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}

	if v := os.Getenv("IDLEWAGE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v, ok := os.LookupEnv("IDLEWAGE_CURRENCY"); ok {
		cfg.Currency = strings.TrimSpace(v)
	}
	if v := os.Getenv("IDLEWAGE_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = debug
		}
	}
	return cfg, nil
}

func (fc fileConfig) apply(cfg *Config) {
	if fc.DBPath != nil && *fc.DBPath != "" {
		cfg.DBPath = *fc.DBPath
	}
	if fc.Currency != nil {
		cfg.Currency = strings.TrimSpace(*fc.Currency)
	}
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}
}

// LogLevel is the zerolog level implied by the configuration.
func (c Config) LogLevel() zerolog.Level {
	if c.Debug {
		return zerolog.DebugLevel
	}
	return zerolog.WarnLevel
}
