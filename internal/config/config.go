package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvDB       = "FEYNMAN_DB"
	EnvLogLevel = "FEYNMAN_LOG_LEVEL"
)

var validate = validator.New()

// Config is the user configuration read from config.yaml.
type Config struct {
	Notes       NotesConfig       `yaml:"notes"`
	Checkpoints CheckpointsConfig `yaml:"checkpoints"`
	Log         LogConfig         `yaml:"log"`
	DB          DBConfig          `yaml:"db"`
}

// NotesConfig bounds notes input.
type NotesConfig struct {
	MaxChars        int           `yaml:"max_chars" validate:"min=1,max=10000"`
	ProcessingDelay time.Duration `yaml:"processing_delay" validate:"min=0,max=1m"`
}

// CheckpointsConfig controls checkpoint synthesis.
type CheckpointsConfig struct {
	DescriptionMode string `yaml:"description_mode" validate:"oneof=random seeded"`
}

// LogConfig controls the application logger.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	Mode  string `yaml:"mode" validate:"oneof=development production"`
	// File is where the TUI writes logs. Empty means the default state path.
	File string `yaml:"file"`
}

// DBConfig locates the preference database.
type DBConfig struct {
	// Path is the SQLite file. Empty means the default data path.
	Path string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Notes: NotesConfig{
			MaxChars:        1000,
			ProcessingDelay: 2 * time.Second,
		},
		Checkpoints: CheckpointsConfig{DescriptionMode: "random"},
		Log: LogConfig{
			Level: "info",
			Mode:  "production",
		},
	}
}

// ErrInvalidConfig wraps a configuration that fails to parse or validate.
type ErrInvalidConfig struct {
	Path string
	Err  error
}

func (e *ErrInvalidConfig) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid config: %v", e.Err)
	}
	return fmt.Sprintf("invalid config %s: %v", e.Path, e.Err)
}

func (e *ErrInvalidConfig) Unwrap() error { return e.Err }

// Load reads configuration from path, falling back to DefaultPath when path
// is empty. A missing default file yields the defaults; a missing explicit
// file is an error. Environment overrides are applied before validation.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, &ErrInvalidConfig{Path: path, Err: err}
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, &ErrInvalidConfig{Path: path, Err: err}
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	return validate.Struct(c)
}

func (c *Config) applyEnv() {
	if p := os.Getenv(EnvDB); p != "" {
		c.DB.Path = p
	}
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		c.Log.Level = strings.ToLower(lvl)
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/feynman/config.yaml, using
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	dir, err := xdgDir("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "feynman", "config.yaml"), nil
}

// DefaultLogPath returns $XDG_STATE_HOME/feynman/feynman.log, using
// ~/.local/state when XDG_STATE_HOME is unset.
func DefaultLogPath() (string, error) {
	dir, err := xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "feynman", "feynman.log"), nil
}

// DefaultDBPath returns $XDG_DATA_HOME/feynman/feynman.db, using
// ~/.local/share when XDG_DATA_HOME is unset.
func DefaultDBPath() (string, error) {
	dir, err := xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "feynman", "feynman.db"), nil
}

func xdgDir(env, fallback string) (string, error) {
	if d := os.Getenv(env); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, fallback), nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
