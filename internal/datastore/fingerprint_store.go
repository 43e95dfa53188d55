package datastore

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aleister1102/webwatcher/internal/common"
	"github.com/aleister1102/webwatcher/internal/config"
	"github.com/aleister1102/webwatcher/internal/fingerprint"
	"github.com/rs/zerolog"
)

const recordFileMode fs.FileMode = 0o644

// FingerprintStoreOptions configures a FingerprintStore.
type FingerprintStoreOptions struct {
	// Dir holds the record files; empty means os.TempDir().
	Dir string
	// FilePrefix starts every record name.
	FilePrefix string
	// Encoder derives the rest of the name; nil selects Base64KeyEncoder.
	Encoder KeyEncoder
}

// FingerprintStore keeps the last fingerprint of each watched URL as one
// raw file per URL. It is not safe for concurrent use by several processes.
type FingerprintStore struct {
	dir     string
	prefix  string
	encoder KeyEncoder
	logger  zerolog.Logger
}

// NewFingerprintStore creates a store, creating its directory if needed.
func NewFingerprintStore(opts FingerprintStoreOptions, logger zerolog.Logger) (*FingerprintStore, error) {
	dir := opts.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	encoder := opts.Encoder
	if encoder == nil {
		encoder = NewBase64KeyEncoder(opts.FilePrefix)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, common.NewStorageError("create directory", dir, err)
	}

	return &FingerprintStore{
		dir:     dir,
		prefix:  opts.FilePrefix,
		encoder: encoder,
		logger:  logger.With().Str("component", "FingerprintStore").Logger(),
	}, nil
}

// NewFingerprintStoreFromConfig creates a store from the storage section.
func NewFingerprintStoreFromConfig(cfg config.StorageConfig, logger zerolog.Logger) (*FingerprintStore, error) {
	return NewFingerprintStore(FingerprintStoreOptions{
		Dir:        cfg.ResolvedStateDir(),
		FilePrefix: cfg.FilePrefix,
	}, logger)
}

// Dir returns the directory holding the records.
func (s *FingerprintStore) Dir() string {
	return s.dir
}

// RecordPath returns the record file for url.
func (s *FingerprintStore) RecordPath(url string) string {
	return filepath.Join(s.dir, s.prefix+s.encoder.Encode(url))
}

// Load returns the raw stored record for url. found is false when no
// record exists yet.
func (s *FingerprintStore) Load(url string) (record []byte, found bool, err error) {
	path := s.RecordPath(url)

	record, err = os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, common.NewStorageError("read", path, err)
	}
	return record, true, nil
}

// CompareAndStore compares fp with the record for url and reports whether
// it changed. A missing record counts as a change. The record is rewritten
// only when it changed; an equal record is left untouched.
func (s *FingerprintStore) CompareAndStore(url string, fp fingerprint.Fingerprint) (bool, error) {
	old, found, err := s.Load(url)
	if err != nil {
		return false, err
	}

	if found && bytes.Equal(old, fp.Bytes()) {
		s.logger.Debug().Str("url", url).Str("fingerprint", fp.String()).Msg("Fingerprint unchanged")
		return false, nil
	}

	if err := s.write(url, fp); err != nil {
		return false, err
	}
	return true, nil
}

// write truncates the record and writes the raw digest.
func (s *FingerprintStore) write(url string, fp fingerprint.Fingerprint) (retErr error) {
	path := s.RecordPath(url)
	s.logger.Info().Str("url", url).Str("path", path).Msg("Writing hash file")

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, recordFileMode)
	if err != nil {
		return common.NewStorageError("open", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && retErr == nil {
			retErr = common.NewStorageError("close", path, closeErr)
		}
	}()

	if _, err := f.Write(fp.Bytes()); err != nil {
		return common.NewStorageError("write", path, err)
	}
	return nil
}
