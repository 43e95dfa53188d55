package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aleister1102/webwatcher/internal/common"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// maxConfigFileSize bounds the optional config file read.
const maxConfigFileSize = 1 << 20

// EnvLookup matches os.LookupEnv so tests can inject an environment.
type EnvLookup func(key string) (string, bool)

// Config is read once at start-up and passed to every component.
type Config struct {
	URLs    []string      `json:"-" yaml:"-"`
	Email   EmailConfig   `json:"-" yaml:"-"`
	Log     LogConfig     `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	Storage StorageConfig `json:"storage_config,omitempty" yaml:"storage_config,omitempty"`
	HTTP    HTTPConfig    `json:"http_config,omitempty" yaml:"http_config,omitempty"`
}

// NewDefaultConfig creates a new Config with default values
func NewDefaultConfig() *Config {
	return &Config{
		URLs:    []string{},
		Log:     NewDefaultLogConfig(),
		Storage: NewDefaultStorageConfig(),
		HTTP:    NewDefaultHTTPConfig(),
	}
}

// LoadFromEnv builds the configuration for one run.
//
// Ambient settings come from the optional file named by WEB_WATCHER_CONFIG.
// The URL list is required here; a missing URL variable fails before any
// network activity. The email variables are captured as-is and checked only
// when a notice is sent.
func LoadFromEnv(lookup EnvLookup) (*Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	cfg := NewDefaultConfig()

	if path, ok := lookup(EnvConfigPath); ok && strings.TrimSpace(path) != "" {
		if err := loadConfigFile(strings.TrimSpace(path), cfg); err != nil {
			return nil, err
		}
	}

	rawURLs, ok := lookup(EnvURLs)
	if !ok {
		return nil, &common.ConfigurationError{
			Section: "env",
			Field:   EnvURLs,
			Reason:  "env var URL not set",
			Wrapped: common.ErrMissingEnv,
		}
	}
	cfg.URLs = ParseURLList(rawURLs)

	cfg.Email = EmailConfig{
		Username: envValue(lookup, EnvEmailUsername),
		Password: envValue(lookup, EnvEmailPassword),
		Server:   strings.TrimSpace(envValue(lookup, EnvEmailServer)),
		To:       strings.TrimSpace(envValue(lookup, EnvEmailTo)),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseURLList splits a whitespace-separated URL list. Order and duplicates
// are preserved.
func ParseURLList(raw string) []string {
	fields := strings.Fields(raw)
	if fields == nil {
		return []string{}
	}
	return fields
}

func envValue(lookup EnvLookup, key string) string {
	v, _ := lookup(key)
	return v
}

// loadConfigFile reads a YAML or JSON file over the defaults in cfg.
// YAML is used for .yaml and .yml, JSON otherwise.
func loadConfigFile(path string, cfg *Config) error {
	info, err := os.Stat(path)
	if err != nil {
		return &common.ConfigurationError{Section: "file", Field: EnvConfigPath, Reason: "cannot stat config file " + path, Wrapped: err}
	}
	if info.IsDir() {
		return common.NewConfigurationError("file", EnvConfigPath, "config path is a directory: "+path)
	}
	if info.Size() > maxConfigFileSize {
		return common.NewConfigurationError("file", EnvConfigPath, "config file too large: "+path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &common.ConfigurationError{Section: "file", Field: EnvConfigPath, Reason: "cannot read config file " + path, Wrapped: err}
	}

	if err := parseConfigContent(data, path, cfg); err != nil {
		return &common.ConfigurationError{Section: "file", Field: EnvConfigPath, Reason: "cannot parse config file", Wrapped: err}
	}
	return nil
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *Config) error {
	if isYAMLFile(filepath.Ext(filePath)) {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return common.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
		}
		return nil
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return common.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}

// isYAMLFile checks if the file extension indicates a YAML file
func isYAMLFile(ext string) bool {
	ext = strings.ToLower(ext)
	return ext == ".yaml" || ext == ".yml"
}
