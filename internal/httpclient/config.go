package httpclient

import (
	"time"

	"github.com/aleister1102/webwatcher/internal/config"
)

// HTTPClientConfig holds configuration for HTTP clients
type HTTPClientConfig struct {
	Timeout         time.Duration // Request timeout, 0 for none
	FollowRedirects bool          // Whether to follow redirects
	MaxRedirects    int           // Maximum number of redirects to follow
	UserAgent       string        // User-Agent header, empty for Go's default
	EnableHTTP2     bool          // Enable HTTP/2 support on the custom transport
}

// DefaultHTTPClientConfig returns the default HTTP client configuration.
// No timeout is set; the transport's own dial and handshake limits apply.
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:         0,
		FollowRedirects: true,
		MaxRedirects:    config.DefaultHTTPMaxRedirects,
		UserAgent:       config.DefaultHTTPUserAgent,
		EnableHTTP2:     true,
	}
}

// FromAppConfig converts the http section of the application config
func FromAppConfig(cfg config.HTTPConfig) HTTPClientConfig {
	hc := DefaultHTTPClientConfig()
	hc.Timeout = cfg.Timeout()
	hc.MaxRedirects = cfg.MaxRedirects
	if cfg.UserAgent != "" {
		hc.UserAgent = cfg.UserAgent
	}
	return hc
}
