package main

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ShayCichocki/careercraft/internal/api"
	"github.com/ShayCichocki/careercraft/internal/catalog"
	"github.com/ShayCichocki/careercraft/internal/config"
	"github.com/ShayCichocki/careercraft/internal/recommend"
)

// buildService creates the configured recommendation provider, wrapped
// with metrics registered on reg. The returned cleanup releases the
// catalog database and stops the seed watcher.
func buildService(ctx context.Context, cfg *config.Config, logger *zap.Logger, reg prometheus.Registerer) (recommend.Service, func(), error) {
	var (
		svc     recommend.Service
		cleanup = func() {}
	)

	switch cfg.Recommend.Provider {
	case recommend.ProviderStatic:
		svc = recommend.NewStatic(cfg.Recommend.StaticLatency)

	case recommend.ProviderCatalog:
		store, stop, err := openCatalog(ctx, cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		svc = recommend.NewCatalog(store, cfg.Recommend.Limit)
		cleanup = stop

	case recommend.ProviderClaude:
		runner, err := createRunner(cfg, logger, reg)
		if err != nil {
			return nil, nil, err
		}
		svc = recommend.NewClaude(runner, cfg.Recommend.Limit)

	default:
		return nil, nil, fmt.Errorf("unknown provider %q", cfg.Recommend.Provider)
	}

	logger.Debug("recommendation service ready", zap.String("provider", cfg.Recommend.Provider))
	return recommend.Instrument(svc, cfg.Recommend.Provider, reg), cleanup, nil
}

// createRunner creates an API runner for the claude provider. Token
// usage is logged and counted on reg.
func createRunner(cfg *config.Config, logger *zap.Logger, reg prometheus.Registerer) (*api.Runner, error) {
	clientCfg := api.ClientConfig{
		Model:         anthropic.Model(cfg.Anthropic.Model),
		UseAWSBedrock: cfg.Anthropic.UseBedrock,
		AWSRegion:     cfg.Anthropic.AWSRegion,
		AWSProfile:    cfg.Anthropic.AWSProfile,
		Registerer:    reg,
		Logger:        logger,
	}
	if !cfg.Anthropic.UseBedrock {
		key, err := config.GetAPIKey(cfg)
		if err != nil {
			return nil, fmt.Errorf("claude provider: %w", err)
		}
		clientCfg.APIKey = key
	}

	client, err := api.NewClient(clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create API client: %w", err)
	}
	return api.NewRunner(client), nil
}

// openCatalog opens the catalog database and makes sure it has roles.
// A configured seed file is imported on every start; otherwise the
// built-in roles are loaded into an empty database. With catalog.watch
// set, the seed file is re-imported whenever it changes.
func openCatalog(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*catalog.Store, func(), error) {
	store, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		return nil, nil, err
	}

	if err := seedCatalog(ctx, store, cfg.Catalog.Seed); err != nil {
		store.Close()
		return nil, nil, err
	}

	if !cfg.Catalog.Watch || cfg.Catalog.Seed == "" {
		return store, func() { store.Close() }, nil
	}

	watcher, err := catalog.NewWatcher(cfg.Catalog.Seed, store, logger)
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		watcher.Run(watchCtx)
	}()

	return store, func() {
		cancel()
		<-done
		store.Close()
	}, nil
}

func seedCatalog(ctx context.Context, store *catalog.Store, seed string) error {
	if seed != "" {
		roles, err := catalog.LoadSeedFile(seed)
		if err != nil {
			return err
		}
		return store.Seed(ctx, roles)
	}

	n, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return store.Seed(ctx, catalog.DefaultRoles())
}
