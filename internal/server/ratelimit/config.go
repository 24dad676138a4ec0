package ratelimit

import (
	"strings"
	"time"

	"github.com/ChrisEOlsen/resume-site/internal/config"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (a trailing "/" means prefix match)
	Method string        // HTTP method
	Limit  int           // Maximum requests per window, 0 means unlimited
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

const defaultWindow = time.Minute

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	if !config.EnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    config.EnvInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow:   positiveDuration("RATE_LIMIT_DEFAULT_WINDOW", defaultWindow),
		CleanupInterval: positiveDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(config.EnvString("RATE_LIMIT_WHITELIST", "")),
		Blacklist:       parseIPList(config.EnvString("RATE_LIMIT_BLACKLIST", "")),
		EndpointConfigs: DefaultEndpointConfigs(config.EnvInt("RATE_LIMIT_PDF_LIMIT", 20)),
	}
}

// DefaultEndpointConfigs returns the endpoint tiers. pdfLimit is the hourly
// allowance per client for the PDF download, which launches a browser per request.
func DefaultEndpointConfigs(pdfLimit int) []EndpointConfig {
	burst := pdfLimit / 4
	if burst < 1 {
		burst = 1
	}
	return []EndpointConfig{
		// Expensive: one headless browser per request
		{Path: "/resume.pdf", Method: "GET", Limit: pdfLimit, Window: time.Hour, Burst: burst},

		// Probes are unlimited
		{Path: "/health", Method: "GET", Limit: 0},
		{Path: "/ready", Method: "GET", Limit: 0},

		// Everything else uses the default limit
	}
}

// positiveDuration reads a duration from key, falling back when it is missing or not positive.
func positiveDuration(key string, fallback time.Duration) time.Duration {
	if d := config.EnvDuration(key, fallback); d > 0 {
		return d
	}
	return fallback
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
