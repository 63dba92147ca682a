package server

import "strings"

const (
	providerMLB     = "mlb"
	providerFixture = "fixture"
)

// normalizeProviderName lower-cases the configured provider, defaulting to the live feed.
// The result labels fetch metrics and logs.
func normalizeProviderName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return providerMLB
	}
	return name
}
