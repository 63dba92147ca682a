package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics(fc fileConfig) MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, boolOr(fc.Metrics.Enabled, true)),
		Port:         envOrDefault(envMetricsPort, stringOr(fc.Metrics.Port, defaultMetricsPort)),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, stringOr(fc.Metrics.OtlpEndpoint, "")),
		ServiceName:  envOrDefault(envOtelService, stringOr(fc.Metrics.ServiceName, defaultServiceName)),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, boolOr(fc.Metrics.OtlpInsecure, true)),
	}
}
