package config

import "strings"

// SlackConfig controls the inbound slash command surface.
type SlackConfig struct {
	Command string
	// SigningSecret enables request signature verification when non-empty.
	SigningSecret  string
	ResponseFormat string
}

func loadSlack(fc fileConfig) SlackConfig {
	format := strings.ToLower(envOrDefault(envResponseFormat, stringOr(fc.Slack.ResponseFormat, defaultResponseFormat)))
	if format != ResponseFormatSlack {
		format = ResponseFormatText
	}
	return SlackConfig{
		Command:        envOrDefault(envSlashCommand, stringOr(fc.Slack.Command, defaultSlashCommand)),
		SigningSecret:  envOrDefault(envSigningSecret, stringOr(fc.Slack.SigningSecret, "")),
		ResponseFormat: format,
	}
}
