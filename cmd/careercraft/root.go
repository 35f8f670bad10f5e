package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ShayCichocki/careercraft/internal/config"
	"github.com/ShayCichocki/careercraft/internal/logging"
	"github.com/ShayCichocki/careercraft/internal/results"
	"github.com/ShayCichocki/careercraft/internal/tui"
	"github.com/ShayCichocki/careercraft/internal/wizard"
)

var providerFlag string

var rootCmd = &cobra.Command{
	Use:   "careercraft",
	Short: "Personalized career roadmaps",
	Long: `CareerCraft walks you through a short profile (name, skills,
interests and goals) and suggests career paths that fit it.

With no arguments, launches the interactive TUI.

Recommendation providers:
- catalog: rank a local role catalog (default, offline)
- static:  a fixed sample list, useful for demos
- claude:  ask an Anthropic model (needs ANTHROPIC_API_KEY or Bedrock)`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&providerFlag, "provider", "", "Recommendation provider (static, catalog, claude)")

	rootCmd.AddCommand(adviseCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads configuration and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if providerFlag != "" {
		cfg.Recommend.Provider = providerFlag
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func runTUI(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	svc, cleanup, err := buildService(ctx, cfg, logger, prometheus.NewRegistry())
	if err != nil {
		return err
	}
	defer cleanup()

	orch := results.New(svc,
		results.WithLogger(logger),
		results.WithTimeout(cfg.Recommend.Timeout),
	)
	app := tui.NewApp(ctx, wizard.New(), orch, logger)

	logger.Info("starting tui", zap.String("provider", cfg.Recommend.Provider))
	if _, err := tui.NewProgram(app, cfg.TUI.AltScreen).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
