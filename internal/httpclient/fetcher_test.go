package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aleister1102/webwatcher/internal/common"
	"github.com/aleister1102/webwatcher/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(cfg HTTPClientConfig) *Fetcher {
	logger := zerolog.Nop()
	return NewFetcher(NewHTTPClientBuilder(logger).WithConfig(cfg).Build(), logger)
}

func TestFetcher_Success(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, "<html>hello</html>")
	}))
	defer server.Close()

	body, err := newTestFetcher(DefaultHTTPClientConfig()).Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, []byte("<html>hello</html>"), body)
	assert.Equal(t, config.DefaultHTTPUserAgent, gotUA)
}

func TestFetcher_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	body, err := newTestFetcher(DefaultHTTPClientConfig()).Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestFetcher_NonSuccessStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"not found", http.StatusNotFound},
		{"server error", http.StatusInternalServerError},
		{"not modified", http.StatusNotModified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			body, err := newTestFetcher(DefaultHTTPClientConfig()).Fetch(context.Background(), server.URL)

			require.Error(t, err)
			assert.Nil(t, body)
			var httpErr *common.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, server.URL, httpErr.URL)
			assert.Equal(t, common.ExitFetchFailure, common.ExitCodeFor(err))
		})
	}
}

func TestFetcher_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestFetcher(DefaultHTTPClientConfig()).Fetch(context.Background(), url)

	require.Error(t, err)
	var netErr *common.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, url, netErr.URL)
	assert.Equal(t, common.KindFetch, common.KindOf(err))
}

func TestFetcher_InvalidURL(t *testing.T) {
	_, err := newTestFetcher(DefaultHTTPClientConfig()).Fetch(context.Background(), "://bad")

	require.Error(t, err)
	assert.Equal(t, common.KindFetch, common.KindOf(err))
}

func TestFetcher_FollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusFound)
	})
	mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "moved")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	body, err := newTestFetcher(DefaultHTTPClientConfig()).Fetch(context.Background(), server.URL+"/old")

	require.NoError(t, err)
	assert.Equal(t, "moved", string(body))
}

func TestFetcher_RedirectLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, r.URL.Path+"x", http.StatusFound)
	}))
	defer server.Close()

	cfg := DefaultHTTPClientConfig()
	cfg.MaxRedirects = 2

	_, err := newTestFetcher(cfg).Fetch(context.Background(), server.URL+"/")

	require.Error(t, err)
	assert.Equal(t, common.KindFetch, common.KindOf(err))
}

func TestFetcher_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	cfg := DefaultHTTPClientConfig()
	cfg.Timeout = 50 * time.Millisecond

	_, err := newTestFetcher(cfg).Fetch(context.Background(), server.URL)

	require.Error(t, err)
	assert.Equal(t, common.KindFetch, common.KindOf(err))
}

func TestFetcher_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "ok")
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestFetcher(DefaultHTTPClientConfig()).Fetch(ctx, server.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
