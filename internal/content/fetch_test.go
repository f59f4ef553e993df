package content_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-cards/internal/config"
	"github.com/tartampluch/go-cards/internal/content"
)

const remoteCard = "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Grace Hopper\r\nTITLE:Rear Admiral\r\nEND:VCARD\r\n"

// TestHTTPFetcher_Fetch_Success verifies headers and body integrity.
func TestHTTPFetcher_Fetch_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, config.UserAgent, r.Header.Get(config.HeaderUserAgent), "User-Agent mismatch")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(remoteCard))
	}))
	defer ts.Close()

	rc, err := content.NewHTTPFetcher().Fetch(context.Background(), ts.URL)
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, remoteCard, string(body))
}

// TestHTTPFetcher_Fetch_Errors verifies error handling for non-200 statuses.
func TestHTTPFetcher_Fetch_Errors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErr    string
	}{
		{"NotFound", http.StatusNotFound, "404"},
		{"ServerError", http.StatusInternalServerError, "500"},
		{"Unauthorized", http.StatusUnauthorized, "401"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer ts.Close()

			rc, err := content.NewHTTPFetcher().Fetch(context.Background(), ts.URL)

			require.Error(t, err)
			assert.Nil(t, rc)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), config.ErrHTTPStatus)
		})
	}
}

// TestHTTPFetcher_Fetch_Timeout ensures the client respects context deadlines.
func TestHTTPFetcher_Fetch_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := content.NewHTTPFetcher().Fetch(ctx, ts.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTPFetcher_Fetch_InvalidURL(t *testing.T) {
	_, err := content.NewHTTPFetcher().Fetch(context.Background(), string([]byte{0x7f}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrInvalidURL)
}

func TestHTTPFetcher_Fetch_ProtocolSecurity(t *testing.T) {
	_, err := content.NewHTTPFetcher().Fetch(context.Background(), "ftp://example.com/card.vcf")

	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrProtocol)
}

func TestHTTPFetcher_Fetch_TooLarge(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", config.MaxVCardSize+1)))
	}))
	defer ts.Close()

	rc, err := content.NewHTTPFetcher().Fetch(context.Background(), ts.URL)

	require.Error(t, err)
	assert.Nil(t, rc)
	assert.Contains(t, err.Error(), config.ErrVCardTooLarge)
}

func TestHTTPFetcher_Fetch_AtLimit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", config.MaxVCardSize)))
	}))
	defer ts.Close()

	rc, err := content.NewHTTPFetcher().Fetch(context.Background(), ts.URL)
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Len(t, body, config.MaxVCardSize)
}

// -----------------------------------------------------------------------------
// LoadCardFields
// -----------------------------------------------------------------------------

func TestLoadCardFields_Remote(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(remoteCard))
	}))
	defer ts.Close()

	got, err := content.LoadCardFields(context.Background(), ts.URL+"/me.vcf", content.NewHTTPFetcher())

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		config.EnvCardName:     "Grace Hopper",
		config.EnvCardJobTitle: "Rear Admiral",
	}, got, "only the fields present in the card are returned")
}

func TestLoadCardFields_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "me.vcf")
	require.NoError(t, os.WriteFile(path, []byte(remoteCard), config.FilePermUserRW))

	got, err := content.LoadCardFields(context.Background(), path, content.NewHTTPFetcher())
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", got[config.EnvCardName])
}

func TestLoadCardFields_MissingFile(t *testing.T) {
	got, err := content.LoadCardFields(context.Background(), filepath.Join(t.TempDir(), "none.vcf"), content.NewHTTPFetcher())

	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrVCardOpen)
	assert.Nil(t, got)
}
