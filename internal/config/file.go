package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config with pointers so unset keys can be told apart from zero values.
type fileConfig struct {
	Port       *string `yaml:"port"`
	Provider   *string `yaml:"provider"`
	Scoreboard struct {
		BaseURL  *string        `yaml:"base_url"`
		Timeout  *time.Duration `yaml:"timeout"`
		Timezone *string        `yaml:"timezone"`
	} `yaml:"scoreboard"`
	Slack struct {
		Command        *string `yaml:"command"`
		SigningSecret  *string `yaml:"signing_secret"`
		ResponseFormat *string `yaml:"response_format"`
	} `yaml:"slack"`
	Metrics struct {
		Enabled      *bool   `yaml:"enabled"`
		Port         *string `yaml:"port"`
		OtlpEndpoint *string `yaml:"otlp_endpoint"`
		ServiceName  *string `yaml:"service_name"`
		OtlpInsecure *bool   `yaml:"otlp_insecure"`
	} `yaml:"metrics"`
}

func readFile(path string) (fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return fc, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fc, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return fc, nil
}

func stringOr(v *string, fallback string) string {
	if v != nil && *v != "" {
		return *v
	}
	return fallback
}

func durationOr(v *time.Duration, fallback time.Duration) time.Duration {
	if v != nil && *v > 0 {
		return *v
	}
	return fallback
}

func boolOr(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}
	return fallback
}
