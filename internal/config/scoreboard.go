package config

import "time"

// ScoreboardConfig controls how we reach the MLB master scoreboard feed.
type ScoreboardConfig struct {
	BaseURL string
	Timeout time.Duration
	// Timezone used to decide which civil date to request; empty means process-local.
	Timezone string
}

func loadScoreboard(fc fileConfig) ScoreboardConfig {
	return ScoreboardConfig{
		BaseURL:  envOrDefault(envScoreboardURL, stringOr(fc.Scoreboard.BaseURL, defaultScoreboardURL)),
		Timeout:  durationEnvOrDefault(envScoreboardTO, durationOr(fc.Scoreboard.Timeout, defaultScoreboardTO)),
		Timezone: envOrDefault(envScoreboardTZ, stringOr(fc.Scoreboard.Timezone, "")),
	}
}
