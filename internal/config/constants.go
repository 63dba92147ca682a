package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envConfigFile      = "CONFIG_FILE"
	envScoreboardURL   = "SCOREBOARD_BASE_URL"
	envScoreboardTO    = "SCOREBOARD_TIMEOUT"
	envScoreboardTZ    = "SCOREBOARD_TIMEZONE"
	envSlashCommand    = "SLASH_COMMAND"
	envSigningSecret   = "SLACK_SIGNING_SECRET"
	envResponseFormat  = "RESPONSE_FORMAT"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	defaultServiceName = "mlb-scores-service"

	// The original deployment listened on 8080.
	defaultPort           = "8080"
	defaultProvider       = "mlb"
	defaultScoreboardURL  = "http://gd2.mlb.com"
	defaultScoreboardTO   = 10 * Duration(time.Second)
	defaultSlashCommand   = "/scores"
	defaultResponseFormat = ResponseFormatText
	defaultMetricsPort    = "9090"
)

// Response formats understood by the slash command handler.
const (
	ResponseFormatText  = "text"
	ResponseFormatSlack = "slack"
)
