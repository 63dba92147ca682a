package config

import "os"

// Config holds runtime configuration for the server.
type Config struct {
	Port       string
	Provider   string
	Scoreboard ScoreboardConfig
	Slack      SlackConfig
	Metrics    MetricsConfig
}

// Load reads configuration with precedence env > CONFIG_FILE (YAML) > defaults.
func Load() (Config, error) {
	fc, err := readFile(os.Getenv(envConfigFile))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:       envOrDefault(envPort, stringOr(fc.Port, defaultPort)),
		Provider:   envOrDefault(envProvider, stringOr(fc.Provider, defaultProvider)),
		Scoreboard: loadScoreboard(fc),
		Slack:      loadSlack(fc),
		Metrics:    loadMetrics(fc),
	}, nil
}
