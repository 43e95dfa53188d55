package common

import "errors"

// ErrorKind groups errors by how the run reacts to them
type ErrorKind string

const (
	KindNone          ErrorKind = ""
	KindConfiguration ErrorKind = "configuration"
	KindFetch         ErrorKind = "fetch"
	KindStorage       ErrorKind = "storage"
	KindNotification  ErrorKind = "notification"
	KindUnknown       ErrorKind = "unknown"
)

// ExitCode is the process status reported by the entry point
type ExitCode int

const (
	ExitOK            ExitCode = 0
	ExitFetchFailure  ExitCode = 1
	ExitConfiguration ExitCode = 2
	ExitStorage       ExitCode = 3
	ExitUnknown       ExitCode = 4
)

// KindOf classifies err by the first typed error found in its chain.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}

	var (
		cfgErr     *ConfigurationError
		valErr     *ValidationError
		netErr     *NetworkError
		httpErr    *HTTPError
		storageErr *StorageError
		notifyErr  *NotificationError
	)

	switch {
	case errors.As(err, &netErr), errors.As(err, &httpErr):
		return KindFetch
	case errors.As(err, &storageErr):
		return KindStorage
	case errors.As(err, &cfgErr), errors.As(err, &valErr),
		errors.Is(err, ErrMissingEnv), errors.Is(err, ErrInvalidConfiguration):
		return KindConfiguration
	case errors.As(err, &notifyErr):
		return KindNotification
	default:
		return KindUnknown
	}
}

// ExitCodeFor maps an error returned by a run to the process exit status.
// Notification failures are best-effort and never fail the run.
func ExitCodeFor(err error) ExitCode {
	switch KindOf(err) {
	case KindNone, KindNotification:
		return ExitOK
	case KindFetch:
		return ExitFetchFailure
	case KindConfiguration:
		return ExitConfiguration
	case KindStorage:
		return ExitStorage
	default:
		return ExitUnknown
	}
}

// IsFatal reports whether err must terminate the run.
func IsFatal(err error) bool {
	return ExitCodeFor(err) != ExitOK
}
