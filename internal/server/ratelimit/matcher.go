package ratelimit

import (
	"strings"
)

// MatchEndpoint returns the configuration for a request, or nil to use the
// default limit. Exact paths win over prefixes (paths ending in "/"). An empty
// Method matches any method.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{Path: path, Method: method}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && methodMatches(config.Method, method) {
			return config
		}
	}

	var best *EndpointConfig
	for i := range configs {
		config := &configs[i]
		if !strings.HasSuffix(config.Path, "/") || !methodMatches(config.Method, method) {
			continue
		}
		if strings.HasPrefix(path, config.Path) && (best == nil || len(config.Path) > len(best.Path)) {
			best = config
		}
	}
	return best
}

func methodMatches(configured, method string) bool {
	return configured == "" || configured == method
}
