// Package config loads wasteland.yaml and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "wasteland.yaml"

// Environment variables consulted by Load.
const (
	EnvConfig   = "WASTELAND_CONFIG"
	EnvLogLevel = "WASTELAND_LOG_LEVEL"
)

// Config holds all runtime settings.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Combat CombatConfig `yaml:"combat"`
	UI     UIConfig     `yaml:"ui"`
}

// LogConfig controls the session log. Logging is off unless FileEnabled or
// StderrEnabled is set; standard output stays the game transcript.
type LogConfig struct {
	Level          string `yaml:"level"`
	StderrEnabled  bool   `yaml:"stderr_enabled"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// CombatConfig holds combat tuning.
type CombatConfig struct {
	// NPCAttackFromDamage copies each NPC's damage into its attack, so
	// NPCs retaliate with non-zero damage.
	NPCAttackFromDamage bool `yaml:"npc_attack_from_damage"`
}

// UIConfig holds front-end settings.
type UIConfig struct {
	// Plain forces the line-oriented CLI even on a terminal.
	Plain bool `yaml:"plain"`

	// HistorySize is the number of commands the TUI remembers.
	HistorySize int `yaml:"history_size"`
}

// DefaultConfig returns a Config with the stock behavior.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:          "INFO",
			FilePath:       "logs/wasteland.log",
			FileFormat:     "text",
			FileMaxSizeMB:  10,
			FileMaxBackups: 5,
			FileMaxAgeDays: 30,
		},
		UI: UIConfig{
			HistorySize: 100,
		},
	}
}

// LoadEnv loads variables from the given .env files (".env" when none are
// named) into the process environment. Missing files are not an error;
// variables already set are left alone.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// Load reads the config file at path. An empty path falls back to
// $WASTELAND_CONFIG, then DefaultPath. A missing file yields defaults.
// WASTELAND_LOG_LEVEL overrides log.level.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path = DefaultPath
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Use defaults.
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that settings are usable.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	switch c.Log.FileFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log file format %q", c.Log.FileFormat)
	}
	if c.Log.FileEnabled && c.Log.FilePath == "" {
		return errors.New("log.file_path is required when log.file_enabled is set")
	}
	if c.UI.HistorySize < 0 {
		return errors.New("ui.history_size must not be negative")
	}
	return nil
}
