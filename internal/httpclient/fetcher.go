package httpclient

import (
	"context"
	"io"

	"github.com/aleister1102/webwatcher/internal/common"
	"github.com/rs/zerolog"
)

// Fetcher retrieves the full body of a page.
type Fetcher struct {
	client *HTTPClient
	logger zerolog.Logger
}

// NewFetcher creates a new Fetcher.
func NewFetcher(client *HTTPClient, logger zerolog.Logger) *Fetcher {
	return &Fetcher{
		client: client,
		logger: logger.With().Str("component", "Fetcher").Logger(),
	}
}

// Fetch performs one GET and returns the whole body. A transport failure
// yields *common.NetworkError and a status outside 2xx yields
// *common.HTTPError. There is no retry.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.logger.Debug().Str("url", url).Int("status_code", resp.StatusCode).Msg("Received non-success HTTP status")
		return nil, common.NewHTTPErrorWithURL(resp.StatusCode, resp.Status, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.NewNetworkError(url, "reading response body failed", err)
	}

	f.logger.Debug().Str("url", url).Int("size", len(body)).Msg("Page fetched")
	return body, nil
}
