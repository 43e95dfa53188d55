package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name            string
		originalError   error
		message         string
		expectedMessage string
	}{
		{
			name:            "wrap simple error",
			originalError:   errors.New("original error"),
			message:         "wrapper message",
			expectedMessage: "wrapper message: original error",
		},
		{
			name:            "empty wrapper message",
			originalError:   errors.New("original error"),
			message:         "",
			expectedMessage: ": original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrappedError := WrapError(tt.originalError, tt.message)
			assert.Error(t, wrappedError)
			assert.Equal(t, tt.expectedMessage, wrappedError.Error())
			assert.ErrorIs(t, wrappedError, tt.originalError)
		})
	}
}

func TestWrapError_Nil(t *testing.T) {
	assert.NoError(t, WrapError(nil, "context"))
	assert.NoError(t, WrapErrorf(nil, "context %d", 1))
}

func TestWrapErrorf(t *testing.T) {
	base := errors.New("disk full")
	err := WrapErrorf(base, "writing record %s", "abc")

	assert.Equal(t, "writing record abc: disk full", err.Error())
	assert.ErrorIs(t, err, base)
}

func TestTypedErrorMessages(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "http error with url",
			err:      NewHTTPErrorWithURL(http.StatusInternalServerError, "Internal Server Error", "http://a.test"),
			expected: "HTTP 500 error for 'http://a.test': Internal Server Error",
		},
		{
			name:     "network error",
			err:      NewNetworkError("http://a.test", "HTTP request failed", cause),
			expected: "network error for 'http://a.test': HTTP request failed: boom",
		},
		{
			name:     "configuration error with field",
			err:      NewConfigurationError("env", "URL", "not set"),
			expected: "configuration error in section 'env', field 'URL': not set",
		},
		{
			name:     "configuration error without section",
			err:      NewConfigurationError("", "", "bad"),
			expected: "configuration error: bad",
		},
		{
			name:     "storage error",
			err:      NewStorageError("write", "/tmp/x", cause),
			expected: "storage error: write '/tmp/x': boom",
		},
		{
			name:     "notification error",
			err:      NewNotificationError("email", cause),
			expected: "email notification failed: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestKindOfAndExitCode(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedKind ErrorKind
		expectedCode ExitCode
	}{
		{"nil", nil, KindNone, ExitOK},
		{"http status", NewHTTPErrorWithURL(500, "", "http://a.test"), KindFetch, ExitFetchFailure},
		{"transport", NewNetworkError("http://a.test", "dial", errors.New("refused")), KindFetch, ExitFetchFailure},
		{"wrapped fetch", fmt.Errorf("checking: %w", NewHTTPErrorWithURL(404, "", "")), KindFetch, ExitFetchFailure},
		{"missing env", WrapError(ErrMissingEnv, "URL"), KindConfiguration, ExitConfiguration},
		{"configuration", NewConfigurationError("email", "EMAIL_SERVER", "bad port"), KindConfiguration, ExitConfiguration},
		{"validation", NewValidationError("urls", nil, "required"), KindConfiguration, ExitConfiguration},
		{"storage", NewStorageError("read", "/x", errors.New("eio")), KindStorage, ExitStorage},
		{"notification", NewNotificationError("email", errors.New("535 auth")), KindNotification, ExitOK},
		{"unknown", errors.New("mystery"), KindUnknown, ExitUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKind, KindOf(tt.err))
			assert.Equal(t, tt.expectedCode, ExitCodeFor(tt.err))
		})
	}
}

func TestIsFatal(t *testing.T) {
	assert.False(t, IsFatal(nil))
	assert.False(t, IsFatal(NewNotificationError("email", errors.New("x"))))
	assert.True(t, IsFatal(NewStorageError("open", "/x", errors.New("x"))))
}
