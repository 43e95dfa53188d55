package config

const (
	// Environment variables
	EnvURLs          = "URL"
	EnvEmailUsername = "EMAIL_USERNAME"
	EnvEmailPassword = "EMAIL_PASSWORD"
	EnvEmailServer   = "EMAIL_SERVER"
	EnvEmailTo       = "EMAIL_TO"
	EnvConfigPath    = "WEB_WATCHER_CONFIG"

	// Storage Defaults
	DefaultStorageFilePrefix = "web_watcher_"

	// HTTP Defaults
	DefaultHTTPTimeoutSeconds = 0 // 0 leaves the transport defaults in place
	DefaultHTTPMaxRedirects   = 10
	DefaultHTTPUserAgent      = "web-watcher/1.0"

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3
)
