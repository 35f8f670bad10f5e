package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrNoAPIKey is returned when no API key is configured.
var ErrNoAPIKey = errors.New("no Anthropic API key configured")

// Keys lists every settable configuration key in display order.
var Keys = []string{
	"anthropic.api_key",
	"anthropic.model",
	"anthropic.use_bedrock",
	"anthropic.aws_region",
	"anthropic.aws_profile",
	"recommend.provider",
	"recommend.timeout",
	"recommend.limit",
	"recommend.static_latency",
	"catalog.path",
	"catalog.seed",
	"catalog.watch",
	"log.level",
	"log.path",
	"tui.alt_screen",
}

// GetAPIKey returns the Anthropic API key.
// It checks in order: environment variable, config file.
func GetAPIKey(cfg *Config) (string, error) {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return key, nil
	}

	if cfg != nil && cfg.Anthropic.APIKey != "" {
		key := os.ExpandEnv(cfg.Anthropic.APIKey)
		if key != "" && !strings.HasPrefix(key, "${") {
			return key, nil
		}
	}

	return "", ErrNoAPIKey
}

// MaskAPIKey returns a masked version of the API key for display.
// Shows the first 7 characters (sk-ant-) and last 4 characters.
func MaskAPIKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 15 {
		return "***"
	}
	return key[:7] + "..." + key[len(key)-4:]
}

// GetValue returns a configuration value by dot-notation key, formatted
// for display. The API key is masked.
func GetValue(cfg *Config, key string) (string, error) {
	switch strings.ToLower(key) {
	case "anthropic.api_key":
		return MaskAPIKey(cfg.Anthropic.APIKey), nil
	case "anthropic.model":
		return cfg.Anthropic.Model, nil
	case "anthropic.use_bedrock":
		return strconv.FormatBool(cfg.Anthropic.UseBedrock), nil
	case "anthropic.aws_region":
		return cfg.Anthropic.AWSRegion, nil
	case "anthropic.aws_profile":
		return cfg.Anthropic.AWSProfile, nil
	case "recommend.provider":
		return cfg.Recommend.Provider, nil
	case "recommend.timeout":
		return cfg.Recommend.Timeout.String(), nil
	case "recommend.limit":
		return strconv.Itoa(cfg.Recommend.Limit), nil
	case "recommend.static_latency":
		return cfg.Recommend.StaticLatency.String(), nil
	case "catalog.path":
		return cfg.Catalog.Path, nil
	case "catalog.seed":
		return cfg.Catalog.Seed, nil
	case "catalog.watch":
		return strconv.FormatBool(cfg.Catalog.Watch), nil
	case "log.level":
		return cfg.Log.Level, nil
	case "log.path":
		return cfg.Log.Path, nil
	case "tui.alt_screen":
		return strconv.FormatBool(cfg.TUI.AltScreen), nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// SetValue parses value and assigns it to the dot-notation key.
func SetValue(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "anthropic.api_key":
		cfg.Anthropic.APIKey = value
	case "anthropic.model":
		cfg.Anthropic.Model = value
	case "anthropic.use_bedrock":
		return setBool(&cfg.Anthropic.UseBedrock, key, value)
	case "anthropic.aws_region":
		cfg.Anthropic.AWSRegion = value
	case "anthropic.aws_profile":
		cfg.Anthropic.AWSProfile = value
	case "recommend.provider":
		cfg.Recommend.Provider = value
	case "recommend.timeout":
		return setDuration(&cfg.Recommend.Timeout, key, value)
	case "recommend.limit":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
		cfg.Recommend.Limit = n
	case "recommend.static_latency":
		return setDuration(&cfg.Recommend.StaticLatency, key, value)
	case "catalog.path":
		cfg.Catalog.Path = value
	case "catalog.seed":
		cfg.Catalog.Seed = value
	case "catalog.watch":
		return setBool(&cfg.Catalog.Watch, key, value)
	case "log.level":
		cfg.Log.Level = value
	case "log.path":
		cfg.Log.Path = value
	case "tui.alt_screen":
		return setBool(&cfg.TUI.AltScreen, key, value)
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

func setBool(dst *bool, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for %s: %w", key, err)
	}
	*dst = b
	return nil
}

func setDuration(dst *time.Duration, key, value string) error {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	*dst = d
	return nil
}
