package content

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"

	"github.com/tartampluch/go-cards/internal/config"
)

// VCardFetcher retrieves vCard data from a remote location.
type VCardFetcher interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}

// HTTPFetcher implements VCardFetcher using the standard net/http library.
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher creates a new instance of HTTPFetcher with configured timeouts.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		Client: &http.Client{
			Timeout: config.HTTPTimeout,
		},
	}
}

// Fetch retrieves a vCard from an http or https URL. A body larger than
// config.MaxVCardSize bytes is an error.
func (f *HTTPFetcher) Fetch(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	u, err := url.Parse(targetURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrInvalidURL, err)
	}
	if u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS {
		return nil, fmt.Errorf("%s: %s", config.ErrProtocol, u.Scheme)
	}

	// Query parameters may carry tokens.
	safeURL := u.Scheme + "://" + u.Host + u.Path

	log := slog.With(
		slog.String(config.LogKeyComponent, config.CompFetcher),
		slog.String(config.LogKeyURL, safeURL),
	)
	log.Debug(config.MsgVCardFetch)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrVCardFetch, err)
	}
	req.Header.Set(config.HeaderUserAgent, config.UserAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrVCardFetch, err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		log.Warn(config.MsgHTTPStatus, slog.Int(config.LogKeyStatus, resp.StatusCode))
		return nil, fmt.Errorf("%s: %s", config.ErrHTTPStatus, resp.Status)
	}

	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, config.MaxVCardSize+1))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrVCardFetch, err)
	}
	if len(data) > config.MaxVCardSize {
		return nil, fmt.Errorf("%s: %d", config.ErrVCardTooLarge, config.MaxVCardSize)
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

// LoadCardFields reads the card at location, a file path or an http(s) URL,
// and returns the fields it sets (see DecodeCardFields).
func LoadCardFields(ctx context.Context, location string, fetcher VCardFetcher) (map[string]string, error) {
	var rc io.ReadCloser
	if u, err := url.Parse(location); err == nil && (u.Scheme == config.SchemeHTTP || u.Scheme == config.SchemeHTTPS) {
		rc, err = fetcher.Fetch(ctx, location)
		if err != nil {
			return nil, err
		}
	} else {
		file, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrVCardOpen, err)
		}
		rc = file
	}
	defer func() { _ = rc.Close() }()

	return DecodeCardFields(rc)
}
