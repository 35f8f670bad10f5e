package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/careercraft/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Manage configuration",
	Long: `View or modify CareerCraft configuration.

Without arguments, displays current configuration.
With one argument (key), displays the value for that key.
With two arguments (key value), sets the configuration value.

Configuration is stored at ~/.config/careercraft/config.yaml
Project-specific overrides can be placed in .careercraft.yaml`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return runConfig(cmd.OutOrStdout(), cfg, args)
	},
}

func runConfig(out io.Writer, cfg *config.Config, args []string) error {
	switch len(args) {
	case 0:
		return displayAllConfig(out, cfg)
	case 1:
		value, err := config.GetValue(cfg, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, value)
		return nil
	default:
		return setConfigKey(out, cfg, args[0], args[1])
	}
}

// displayAllConfig prints all configuration values.
func displayAllConfig(out io.Writer, cfg *config.Config) error {
	for _, key := range config.Keys {
		value, err := config.GetValue(cfg, key)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s\n", key, value)
	}
	if p := config.GetProjectConfigPath(); p != "" {
		fmt.Fprintf(out, "\n(project overrides from %s)\n", p)
	}
	return nil
}

// setConfigKey sets a configuration value and saves the config.
func setConfigKey(out io.Writer, cfg *config.Config, key, value string) error {
	if err := config.SetValue(cfg, key, value); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	shown, _ := config.GetValue(cfg, key)
	fmt.Fprintf(out, "Set %s = %s\n", key, shown)
	fmt.Fprintf(out, "Saved to %s\n", config.GetUserConfigPath())
	return nil
}
