// Package config loads bitrot settings from a TOML file and the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

// Environment variables that override the file.
const (
	EnvConfig    = "BITROT_CONFIG"
	EnvLogLevel  = "BITROT_LOG_LEVEL"
	EnvHistoryDB = "BITROT_HISTORY_DB"
	EnvSaveFile  = "BITROT_SAVE_FILE"
)

// Dir is the per-user directory holding the config file and the history.
const Dir = "~/.bitrot"

// Config holds the user settings. Zero values never reach callers: Load
// starts from Default and only overrides what the file sets.
type Config struct {
	// CorruptionRate is used by play and corrupt when --rate is not given.
	CorruptionRate float64 `toml:"corruption_rate"`
	// Seed pins the corruption of new games; unset means time-derived.
	Seed *uint32 `toml:"seed,omitempty"`
	// SaveFile is offered when a save or load prompt is left empty.
	SaveFile string `toml:"save_file"`
	// History enables recording finished games.
	History   bool   `toml:"history"`
	HistoryDB string `toml:"history_db"`
	LogLevel  string `toml:"log_level"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		CorruptionRate: 0.3,
		SaveFile:       "bitrot.sav",
		History:        true,
		HistoryDB:      filepath.Join(Dir, "history.db"),
		LogLevel:       zerolog.WarnLevel.String(),
	}
}

// DefaultPath returns the config file used when none is given.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".bitrot", "config.toml"), nil
}

// LoadDotEnv reads .env files into the environment. Missing files are
// skipped and variables already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}

	return nil
}

// Load reads the config at path. An empty path falls back to $BITROT_CONFIG
// and then to DefaultPath. A missing file yields Default with environment
// overrides applied.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}

	if path == "" {
		var err error

		path, err = DefaultPath()
		if err != nil {
			// no home directory, nothing to read
			cfg.applyEnv()
			return cfg, cfg.Validate()
		}
	}

	// #nosec G304 - the user chooses the config file
	data, err := os.ReadFile(path)

	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	return cfg, cfg.Validate()
}

func decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	err := dec.Decode(cfg)

	var strict *toml.StrictMissingError
	if errors.As(err, &strict) {
		return errors.New(strict.String())
	}

	return err
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}

	if v := os.Getenv(EnvHistoryDB); v != "" {
		c.HistoryDB = v
	}

	if v := os.Getenv(EnvSaveFile); v != "" {
		c.SaveFile = v
	}
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if math.IsNaN(c.CorruptionRate) || c.CorruptionRate < 0 || c.CorruptionRate > 1 {
		return fmt.Errorf("corruption_rate %v is not between 0 and 1", c.CorruptionRate)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	if c.History && c.HistoryDB == "" {
		return errors.New("history is enabled but history_db is empty")
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log_level: %w", err)
	}

	return lvl, nil
}

// Write stores c as TOML at path, creating the directory if needed.
func (c Config) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	data, err := c.TOML()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

// TOML encodes c in the config file format.
func (c Config) TOML() ([]byte, error) {
	return toml.Marshal(c)
}
