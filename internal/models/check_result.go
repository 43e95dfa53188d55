package models

import (
	"time"

	"github.com/aleister1102/webwatcher/internal/fingerprint"
)

// CheckResult is the outcome of checking one URL
type CheckResult struct {
	URL         string                  `json:"url"`
	Changed     bool                    `json:"changed"`
	Fingerprint fingerprint.Fingerprint `json:"-"`
	CheckedAt   time.Time               `json:"checked_at"`
}

// RunSummary aggregates one pass over the configured URLs
type RunSummary struct {
	URLs      []string      `json:"urls"`
	Checked   int           `json:"checked"`
	Changed   []string      `json:"changed"`
	Notified  bool          `json:"notified"`
	NotifyErr error         `json:"-"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

// NewRunSummary starts a summary for urls
func NewRunSummary(urls []string) *RunSummary {
	return &RunSummary{
		URLs:      urls,
		Changed:   []string{},
		StartedAt: time.Now(),
	}
}

// AddResult records the outcome of one check
func (s *RunSummary) AddResult(result CheckResult) {
	s.Checked++
	if result.Changed {
		s.Changed = append(s.Changed, result.URL)
	}
}

// HasChanges reports whether any checked URL changed
func (s *RunSummary) HasChanges() bool {
	return len(s.Changed) > 0
}

// Finish stamps the run duration
func (s *RunSummary) Finish() {
	s.Duration = time.Since(s.StartedAt)
}
