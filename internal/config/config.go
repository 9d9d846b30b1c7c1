package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ThemeConfig holds colour overrides on top of a preset.
type ThemeConfig struct {
	Preset        string `mapstructure:"preset"`
	Primary       string `mapstructure:"primary"`
	Secondary     string `mapstructure:"secondary"`
	Accent        string `mapstructure:"accent"`
	Muted         string `mapstructure:"muted"`
	Danger        string `mapstructure:"danger"`
	Highlight     string `mapstructure:"highlight"`
	Background    string `mapstructure:"background"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// Config holds the application configuration.
type Config struct {
	Storage   string      `mapstructure:"storage"`
	DataDir   string      `mapstructure:"data_dir"`
	DBFile    string      `mapstructure:"db_file"`
	Editor    string      `mapstructure:"editor"`
	WeekStart string      `mapstructure:"week_start"`
	LogFile   string      `mapstructure:"log_file"`
	Theme     ThemeConfig `mapstructure:"theme"`
}

// DefaultDataDir returns the default data directory (~/.diarycal/).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".diarycal")
	}
	return filepath.Join(home, ".diarycal")
}

// LogPath returns the log file path, defaulting to a file in the data directory.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(c.DataDir, "diarycal.log")
}

// MondayFirst reports whether calendar weeks start on Monday.
func (c *Config) MondayFirst() bool {
	return !strings.EqualFold(c.WeekStart, "sunday")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("storage", "sqlite")
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("db_file", "diary.db")
	v.SetDefault("editor", "")
	v.SetDefault("week_start", "monday")
	v.SetDefault("log_file", "")
	v.SetDefault("theme.preset", "default-dark")
	v.SetDefault("theme.primary", "")
	v.SetDefault("theme.secondary", "")
	v.SetDefault("theme.accent", "")
	v.SetDefault("theme.muted", "")
	v.SetDefault("theme.danger", "")
	v.SetDefault("theme.highlight", "")
	v.SetDefault("theme.background", "")
	v.SetDefault("theme.markdown_style", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "diarycal"))
		}
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: DIARYCAL_STORAGE, DIARYCAL_THEME_PRESET, etc.
	v.SetEnvPrefix("DIARYCAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// An explicit --config must exist and parse.
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
