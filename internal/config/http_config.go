package config

import "time"

// HTTPConfig defines configuration for the page fetcher
type HTTPConfig struct {
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" validate:"min=0"`
	UserAgent      string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	MaxRedirects   int    `json:"max_redirects,omitempty" yaml:"max_redirects,omitempty" validate:"min=0"`
}

// NewDefaultHTTPConfig creates default HTTP configuration
func NewDefaultHTTPConfig() HTTPConfig {
	return HTTPConfig{
		TimeoutSeconds: DefaultHTTPTimeoutSeconds,
		UserAgent:      DefaultHTTPUserAgent,
		MaxRedirects:   DefaultHTTPMaxRedirects,
	}
}

// Timeout returns the client timeout; zero means no explicit timeout.
func (hc HTTPConfig) Timeout() time.Duration {
	return time.Duration(hc.TimeoutSeconds) * time.Second
}
