package server

import (
	"log/slog"

	"mlb-scores-service/internal/config"
	"mlb-scores-service/internal/metrics"
	"mlb-scores-service/internal/providers"
)

// providerFactory assembles the configured provider with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.ScoreboardProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

func (f providerFactory) wrap(cfg config.Config, base providers.ScoreboardProvider) providers.ScoreboardProvider {
	return providers.NewInstrumentedProvider(base, normalizeProviderName(cfg.Provider), f.logger, f.metrics)
}
