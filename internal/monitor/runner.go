package monitor

import (
	"context"
	"errors"

	"github.com/aleister1102/webwatcher/internal/common"
	"github.com/aleister1102/webwatcher/internal/models"
	"github.com/aleister1102/webwatcher/internal/notifier"
	"github.com/rs/zerolog"
)

// Runner makes one pass over the configured URLs and sends at most one
// notice.
type Runner struct {
	urls     []string
	checker  *URLChecker
	notifier notifier.Notifier
	logger   zerolog.Logger
}

// NewRunner creates a new Runner
func NewRunner(urls []string, checker *URLChecker, n notifier.Notifier, logger zerolog.Logger) *Runner {
	return &Runner{
		urls:     urls,
		checker:  checker,
		notifier: n,
		logger:   logger.With().Str("component", "Runner").Logger(),
	}
}

// Run checks every URL in order. The first fetch or storage error stops
// the run before later URLs and before any notice. A failed delivery is
// recorded in the summary and logged; it does not fail the run.
func (r *Runner) Run(ctx context.Context) (*models.RunSummary, error) {
	summary := models.NewRunSummary(r.urls)
	defer summary.Finish()

	r.logger.Info().Int("url_count", len(r.urls)).Msg("Starting check")

	for _, url := range r.urls {
		result, err := r.checker.Check(ctx, url)
		if err != nil {
			return summary, err
		}
		summary.AddResult(result)
	}

	if !summary.HasChanges() {
		r.logger.Info().Msg("Web pages are not changed")
		r.logger.Info().Int("checked", summary.Checked).Msg("Done")
		return summary, nil
	}

	if err := r.notifier.Notify(ctx, summary.Changed); err != nil {
		var notifyErr *common.NotificationError
		if !errors.As(err, &notifyErr) {
			return summary, err
		}
		summary.NotifyErr = err
		r.logger.Warn().Err(err).Strs("changed", summary.Changed).Msg("Change notice not delivered")
	} else {
		summary.Notified = true
	}

	r.logger.Info().Int("checked", summary.Checked).Int("changed", len(summary.Changed)).Msg("Done")
	return summary, nil
}
