// Package config handles configuration loading and management for
// CareerCraft. It supports XDG config paths, project-level overrides, and
// environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ProjectConfigName is the project-level override file searched for in the
// working directory and its parents.
const ProjectConfigName = ".careercraft.yaml"

// Config holds all configuration for CareerCraft.
type Config struct {
	Anthropic AnthropicConfig `mapstructure:"anthropic"`
	Recommend RecommendConfig `mapstructure:"recommend"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Log       LogConfig       `mapstructure:"log"`
	TUI       TUIConfig       `mapstructure:"tui"`
}

// AnthropicConfig holds Anthropic API settings for the claude provider.
type AnthropicConfig struct {
	APIKey     string `mapstructure:"api_key"`
	Model      string `mapstructure:"model"`
	UseBedrock bool   `mapstructure:"use_bedrock"`
	AWSRegion  string `mapstructure:"aws_region"`
	AWSProfile string `mapstructure:"aws_profile"`
}

// RecommendConfig selects and tunes the recommendation provider.
type RecommendConfig struct {
	// Provider is one of static, catalog, claude.
	Provider string        `mapstructure:"provider"`
	Timeout  time.Duration `mapstructure:"timeout"`
	// Limit caps the number of recommendations returned.
	Limit         int           `mapstructure:"limit"`
	StaticLatency time.Duration `mapstructure:"static_latency"`
}

// CatalogConfig holds role catalog settings.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
	// Seed is a YAML file to import on startup. Empty uses the built-in
	// catalog when the database is empty.
	Seed  string `mapstructure:"seed"`
	Watch bool   `mapstructure:"watch"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// TUIConfig holds TUI display settings.
type TUIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (ANTHROPIC_API_KEY, CAREERCRAFT_*)
// 2. Project config (.careercraft.yaml in current directory or parent)
// 3. User config (~/.config/careercraft/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(getUserConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	if projectConfig := findProjectConfig(); projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	bindEnv(v)
	return unmarshal(v)
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	return unmarshal(v)
}

func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("CAREERCRAFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("anthropic.api_key", "ANTHROPIC_API_KEY", "CAREERCRAFT_ANTHROPIC_API_KEY")
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Anthropic.APIKey = expandEnv(cfg.Anthropic.APIKey)
	cfg.Catalog.Path = expandPath(cfg.Catalog.Path)
	cfg.Catalog.Seed = expandPath(cfg.Catalog.Seed)
	cfg.Log.Path = expandPath(cfg.Log.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later at startup.
func (c *Config) Validate() error {
	switch c.Recommend.Provider {
	case "static", "catalog", "claude":
	default:
		return fmt.Errorf("invalid recommend.provider %q: want static, catalog or claude", c.Recommend.Provider)
	}
	if c.Recommend.Limit < 0 {
		return fmt.Errorf("invalid recommend.limit %d: must not be negative", c.Recommend.Limit)
	}
	if c.Recommend.Timeout < 0 {
		return fmt.Errorf("invalid recommend.timeout %s: must not be negative", c.Recommend.Timeout)
	}
	return nil
}

// Save writes the current configuration to the user config file.
func Save(cfg *Config) error {
	userConfigDir := getUserConfigDir()
	if err := os.MkdirAll(userConfigDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(userConfigDir, "config.yaml"))

	v.Set("anthropic.api_key", cfg.Anthropic.APIKey)
	v.Set("anthropic.model", cfg.Anthropic.Model)
	v.Set("anthropic.use_bedrock", cfg.Anthropic.UseBedrock)
	v.Set("anthropic.aws_region", cfg.Anthropic.AWSRegion)
	v.Set("anthropic.aws_profile", cfg.Anthropic.AWSProfile)
	v.Set("recommend.provider", cfg.Recommend.Provider)
	v.Set("recommend.timeout", cfg.Recommend.Timeout.String())
	v.Set("recommend.limit", cfg.Recommend.Limit)
	v.Set("recommend.static_latency", cfg.Recommend.StaticLatency.String())
	v.Set("catalog.path", cfg.Catalog.Path)
	v.Set("catalog.seed", cfg.Catalog.Seed)
	v.Set("catalog.watch", cfg.Catalog.Watch)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.path", cfg.Log.Path)
	v.Set("tui.alt_screen", cfg.TUI.AltScreen)

	return v.WriteConfig()
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("anthropic.api_key", d.Anthropic.APIKey)
	v.SetDefault("anthropic.model", d.Anthropic.Model)
	v.SetDefault("anthropic.use_bedrock", d.Anthropic.UseBedrock)
	v.SetDefault("anthropic.aws_region", d.Anthropic.AWSRegion)
	v.SetDefault("anthropic.aws_profile", d.Anthropic.AWSProfile)

	v.SetDefault("recommend.provider", d.Recommend.Provider)
	v.SetDefault("recommend.timeout", d.Recommend.Timeout.String())
	v.SetDefault("recommend.limit", d.Recommend.Limit)
	v.SetDefault("recommend.static_latency", d.Recommend.StaticLatency.String())

	v.SetDefault("catalog.path", d.Catalog.Path)
	v.SetDefault("catalog.seed", d.Catalog.Seed)
	v.SetDefault("catalog.watch", d.Catalog.Watch)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.path", d.Log.Path)

	v.SetDefault("tui.alt_screen", d.TUI.AltScreen)
}

// getUserConfigDir returns the XDG config directory for CareerCraft.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "careercraft")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "careercraft")
	}
	return filepath.Join(home, ".config", "careercraft")
}

// getDataDir returns the XDG data directory for CareerCraft.
func getDataDir() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "careercraft")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".local", "share", "careercraft")
	}
	return filepath.Join(home, ".local", "share", "careercraft")
}

// findProjectConfig searches for .careercraft.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ProjectConfigName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// expandEnv expands ${VAR} references in a string.
func expandEnv(s string) string {
	return os.ExpandEnv(s)
}

// expandPath expands ${VAR} references and a leading ~/.
func expandPath(p string) string {
	p = os.ExpandEnv(p)
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[2:])
		}
	}
	return p
}

// Default returns a Config with default values.
func Default() *Config {
	dataDir := getDataDir()
	return &Config{
		Anthropic: AnthropicConfig{
			Model: "claude-sonnet-4-20250514",
		},
		Recommend: RecommendConfig{
			Provider:      "catalog",
			Timeout:       30 * time.Second,
			Limit:         5,
			StaticLatency: time.Second,
		},
		Catalog: CatalogConfig{
			Path: filepath.Join(dataDir, "catalog.db"),
		},
		Log: LogConfig{
			Level: "info",
			Path:  filepath.Join(dataDir, "logs", "careercraft.log"),
		},
		TUI: TUIConfig{
			AltScreen: true,
		},
	}
}
