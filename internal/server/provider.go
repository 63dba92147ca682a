package server

import (
	"log/slog"

	"mlb-scores-service/internal/config"
	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/providers/fixture"
	"mlb-scores-service/internal/providers/mlb"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.ScoreboardProvider {
	switch normalizeProviderName(cfg.Provider) {
	case providerFixture:
		return fixture.New()
	case providerMLB:
		return mlb.NewClient(mlb.Config{
			BaseURL: cfg.Scoreboard.BaseURL,
			Timeout: cfg.Scoreboard.Timeout,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to mlb", slog.String("provider", cfg.Provider))
		}
		return mlb.NewClient(mlb.Config{
			BaseURL: cfg.Scoreboard.BaseURL,
			Timeout: cfg.Scoreboard.Timeout,
		})
	}
}
