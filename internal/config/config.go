// Package config loads swatch configuration from file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/opencode-ai/swatch/internal/logging"
)

// EnvPrefix is the prefix for environment overrides, e.g. SWATCH_TUI_THEME.
const EnvPrefix = "SWATCH"

// Config is the top-level configuration.
type Config struct {
	TUI     TUIConfig     `mapstructure:"tui"`
	Themes  ThemesConfig  `mapstructure:"themes"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TUIConfig controls the editor UI.
type TUIConfig struct {
	// Theme is the id of the base theme selected at startup.
	Theme string `mapstructure:"theme"`

	// Debounce is how long typing must pause before an edit commits.
	Debounce time.Duration `mapstructure:"debounce"`

	// TickInterval is how often pending edits are checked.
	TickInterval time.Duration `mapstructure:"tick_interval"`
}

// ThemesConfig lists extra directories of base theme definitions.
type ThemesConfig struct {
	Dirs []string `mapstructure:"dirs"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TUI: TUIConfig{
			Theme:        "light",
			Debounce:     750 * time.Millisecond,
			TickInterval: time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   DefaultLogFile(),
		},
	}
}

// DefaultConfigDir returns ~/.config/swatch, honoring XDG_CONFIG_HOME.
func DefaultConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "swatch")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".config", "swatch")
	}
	return ""
}

// DefaultLogFile returns the log path under the XDG state directory.
func DefaultLogFile() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "swatch", "swatch.log")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".local", "state", "swatch", "swatch.log")
	}
	return ""
}

// Load reads configuration. An explicit path must exist; otherwise config.yaml
// in DefaultConfigDir is used when present. Environment variables override both.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		if dir := DefaultConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("tui.theme", def.TUI.Theme)
	v.SetDefault("tui.debounce", def.TUI.Debounce)
	v.SetDefault("tui.tick_interval", def.TUI.TickInterval)
	v.SetDefault("themes.dirs", []string{})
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.file", def.Logging.File)
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.TUI.Debounce <= 0 {
		return fmt.Errorf("tui.debounce must be greater than 0")
	}
	if c.TUI.TickInterval <= 0 {
		return fmt.Errorf("tui.tick_interval must be greater than 0")
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// LoggingOptions converts to the logging package form.
func (c *Config) LoggingOptions() logging.Config {
	return logging.Config{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
		File:   c.Logging.File,
	}
}
