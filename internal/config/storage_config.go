package config

import "os"

// StorageConfig defines where fingerprint records are kept.
// An empty StateDir means the platform's shared temporary directory.
type StorageConfig struct {
	StateDir   string `json:"state_dir,omitempty" yaml:"state_dir,omitempty"`
	FilePrefix string `json:"file_prefix,omitempty" yaml:"file_prefix,omitempty" validate:"required,filenamepart"`
}

// NewDefaultStorageConfig creates default storage configuration
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		StateDir:   "",
		FilePrefix: DefaultStorageFilePrefix,
	}
}

// ResolvedStateDir returns StateDir, falling back to os.TempDir.
func (sc StorageConfig) ResolvedStateDir() string {
	if sc.StateDir == "" {
		return os.TempDir()
	}
	return sc.StateDir
}
