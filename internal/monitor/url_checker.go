package monitor

import (
	"context"
	"time"

	"github.com/aleister1102/webwatcher/internal/fingerprint"
	"github.com/aleister1102/webwatcher/internal/models"
	"github.com/rs/zerolog"
)

// PageFetcher returns the raw body of a page. *httpclient.Fetcher
// satisfies it.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FingerprintStore compares and persists fingerprints.
// *datastore.FingerprintStore satisfies it.
type FingerprintStore interface {
	CompareAndStore(url string, fp fingerprint.Fingerprint) (bool, error)
}

// URLChecker handles the checking of individual URLs
type URLChecker struct {
	fetcher PageFetcher
	store   FingerprintStore
	logger  zerolog.Logger
}

// NewURLChecker creates a new URLChecker
func NewURLChecker(fetcher PageFetcher, store FingerprintStore, logger zerolog.Logger) *URLChecker {
	return &URLChecker{
		fetcher: fetcher,
		store:   store,
		logger:  logger.With().Str("component", "URLChecker").Logger(),
	}
}

// Check fetches url, fingerprints the body and reports whether it differs
// from the stored fingerprint. Fetch and storage errors are returned as is.
func (uc *URLChecker) Check(ctx context.Context, url string) (models.CheckResult, error) {
	result := models.CheckResult{
		URL:       url,
		CheckedAt: time.Now(),
	}

	uc.logger.Info().Str("url", url).Msg("Start fetching")
	body, err := uc.fetcher.Fetch(ctx, url)
	if err != nil {
		uc.logger.Error().Err(err).Str("url", url).Msg("Error fetching")
		return result, err
	}

	result.Fingerprint = fingerprint.Compute(body)

	changed, err := uc.store.CompareAndStore(url, result.Fingerprint)
	if err != nil {
		uc.logger.Error().Err(err).Str("url", url).Msg("Error storing fingerprint")
		return result, err
	}
	result.Changed = changed

	if changed {
		uc.logger.Info().Str("url", url).Str("fingerprint", result.Fingerprint.String()).Msg("Web page changed")
	} else {
		uc.logger.Debug().Str("url", url).Msg("Web page unchanged")
	}
	return result, nil
}

// CheckURL reports whether url changed since the previous run.
func (uc *URLChecker) CheckURL(ctx context.Context, url string) (bool, error) {
	result, err := uc.Check(ctx, url)
	return result.Changed, err
}
