// Package config loads kodeline's YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/kodeline/gate"
	"github.com/iw2rmb/kodeline/history"
	"github.com/iw2rmb/kodeline/session"
)

// Config holds all kodeline configuration.
type Config struct {
	// Editing behavior
	Multiline                          bool   `yaml:"multiline"`
	Mask                               string `yaml:"mask"`
	DisableCursorMovementForUpDownKeys bool   `yaml:"disable_cursor_movement_for_up_down_keys"`

	// Timing, as Go durations ("800ms", "4s")
	DoublePressWindow string `yaml:"double_press_window"`
	MessageTimeout    string `yaml:"message_timeout"`
	ClipboardTimeout  string `yaml:"clipboard_timeout"`

	History HistoryConfig `yaml:"history"`
	Logging LoggingConfig `yaml:"logging"`
}

// HistoryConfig configures input history persistence.
type HistoryConfig struct {
	File  string `yaml:"file"` // empty disables persistence
	Limit int    `yaml:"limit"`
}

// LoggingConfig configures the zap logger. Logs go to a file because the
// terminal belongs to the prompt.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	File        string `yaml:"file"`  // empty disables logging
	Development bool   `yaml:"development"`
}

// Default returns the default configuration.
func Default() *Config {
	dir := Dir()
	return &Config{
		DoublePressWindow: gate.DefaultWindow.String(),
		MessageTimeout:    session.DefaultMessageTimeout.String(),
		ClipboardTimeout:  session.DefaultClipboardTimeout.String(),
		History: HistoryConfig{
			File:  filepath.Join(dir, "history.yaml"),
			Limit: history.DefaultLimit,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Dir returns the kodeline config directory under $XDG_CONFIG_HOME (or the
// platform equivalent).
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".kodeline"
	}
	return filepath.Join(base, "kodeline")
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// DefaultLogPath is where verbose runs log when no file is configured.
func DefaultLogPath() string {
	return filepath.Join(Dir(), "kodeline.log")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("KODELINE_MULTILINE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Multiline = b
		}
	}
	if v := os.Getenv("KODELINE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("KODELINE_HISTORY_FILE"); v != "" {
		c.History.File = v
	}
}

// Validate checks durations and the log level.
func (c *Config) Validate() error {
	for name, v := range map[string]string{
		"double_press_window": c.DoublePressWindow,
		"message_timeout":     c.MessageTimeout,
		"clipboard_timeout":   c.ClipboardTimeout,
	} {
		if v == "" {
			continue
		}
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, v, err)
		}
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging level %q: %w", c.Logging.Level, err)
	}
	return nil
}

// GetDoublePressWindow returns the double-press window as a duration.
func (c *Config) GetDoublePressWindow() time.Duration {
	return parseDuration(c.DoublePressWindow, gate.DefaultWindow)
}

// GetMessageTimeout returns the transient message timeout as a duration.
func (c *Config) GetMessageTimeout() time.Duration {
	return parseDuration(c.MessageTimeout, session.DefaultMessageTimeout)
}

// GetClipboardTimeout returns the clipboard read bound as a duration.
func (c *Config) GetClipboardTimeout() time.Duration {
	return parseDuration(c.ClipboardTimeout, session.DefaultClipboardTimeout)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// NewLogger builds a file logger from the logging section. With no file it
// returns a no-op logger.
func (l LoggingConfig) NewLogger() (*zap.Logger, error) {
	if l.File == "" {
		return zap.NewNop(), nil
	}
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid logging level %q: %w", l.Level, err)
	}
	if err := os.MkdirAll(filepath.Dir(l.File), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	zc := zap.NewProductionConfig()
	if l.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{l.File}
	zc.ErrorOutputPaths = []string{l.File}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
