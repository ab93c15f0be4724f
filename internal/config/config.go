// Package config handles the utask configuration file and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application directory name under the config root.
	AppName = "utask"

	// ConfigFile is the configuration filename inside the config directory.
	ConfigFile = "config.yaml"

	// DefaultTasksPath is the task collection name under a user resource.
	DefaultTasksPath = "todos"
)

// Themes accepted for tui.theme.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config holds the complete utask configuration.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`

	// Dir is the configuration directory path.
	Dir string `mapstructure:"-"`

	// Quiet suppresses informational output. Set from the command line.
	Quiet bool `mapstructure:"-"`

	// Debug prints debug logs to stderr. Set from the command line.
	Debug bool `mapstructure:"-"`

	v *viper.Viper
}

// APIConfig locates the remote backend.
type APIConfig struct {
	// BaseURL is the endpoint root, e.g. "https://example.mockapi.io/api".
	BaseURL string `mapstructure:"base_url"`
	// TasksPath is the collection name for user-scoped tasks.
	TasksPath string `mapstructure:"tasks_path"`
}

// TUIConfig controls the terminal UI.
type TUIConfig struct {
	// Theme is the color theme, "light" or "dark".
	Theme string `mapstructure:"theme"`
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	// Level is the minimum level written: debug, info, warn or error.
	Level string `mapstructure:"level"`
}

// Load reads configuration from the given directory, falling back to the
// default directory when empty. A missing config file is not an error;
// defaults and UTASK_* environment variables still apply.
func Load(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetDefault("api.base_url", "")
	v.SetDefault("api.tasks_path", DefaultTasksPath)
	v.SetDefault("tui.theme", ThemeDark)
	v.SetDefault("logging.level", "info")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("UTASK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{Dir: dir, v: v}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// EnsureDir creates the config directory if it doesn't exist.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// SaveTheme persists a theme choice back to the config file.
func (c *Config) SaveTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme: %s", theme)
	}
	c.TUI.Theme = theme
	if err := c.EnsureDir(); err != nil {
		return err
	}
	c.v.Set("tui.theme", theme)
	return c.v.WriteConfigAs(filepath.Join(c.Dir, ConfigFile))
}
