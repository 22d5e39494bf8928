package wordreference

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHeaders = map[string]string{
	"accept-language": "es-ES,es;q=0.9",
	"cookie":          "llang=esesi",
	"user-agent":      "wordharvest-test",
}

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return server, &requests
}

func TestClient_Lookup(t *testing.T) {
	tests := []struct {
		name           string
		word           string
		handler        http.HandlerFunc
		want           []string
		wantStatusCode int
		wantFetchErr   bool
	}{
		{
			name: "definitions are extracted",
			word: "casa",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(casaPage))
			},
			want: []string{
				"Edificio para habitar: una casa de dos plantas .",
				"Familia, linaje.",
				"Establecimiento comercial",
			},
		},
		{
			name: "page without definitions",
			word: "xyz",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html><body>No se ha encontrado</body></html>`))
			},
			want: []string{},
		},
		{
			name: "not found status",
			word: "casa",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantFetchErr:   true,
		},
		{
			name: "server error status",
			word: "casa",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			wantStatusCode: http.StatusServiceUnavailable,
			wantFetchErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newTestServer(t, tt.handler)
			client := NewClient(Config{BaseURL: server.URL + "/definicion", Headers: testHeaders})

			got, err := client.Lookup(context.Background(), tt.word)
			if tt.wantFetchErr {
				var fetchErr *FetchError
				require.ErrorAs(t, err, &fetchErr)
				assert.Equal(t, tt.word, fetchErr.Word)
				assert.Equal(t, tt.wantStatusCode, fetchErr.StatusCode)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_Lookup_Request(t *testing.T) {
	var gotPath string
	var gotHeader http.Header
	server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotHeader = r.Header.Clone()
		_, _ = w.Write([]byte(casaPage))
	})

	client := NewClient(Config{BaseURL: server.URL + "/definicion/", Headers: testHeaders})
	_, err := client.Lookup(context.Background(), "año nuevo")
	require.NoError(t, err)

	assert.Equal(t, "/definicion/a%C3%B1o%20nuevo", gotPath)
	assert.Equal(t, "es-ES,es;q=0.9", gotHeader.Get("Accept-Language"))
	assert.Equal(t, "llang=esesi", gotHeader.Get("Cookie"))
	assert.Equal(t, "wordharvest-test", gotHeader.Get("User-Agent"))
}

func TestClient_Lookup_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := NewClient(Config{BaseURL: baseURL})
	got, err := client.Lookup(context.Background(), "casa")

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Zero(t, fetchErr.StatusCode)
	assert.Nil(t, got)
}

func TestClient_Lookup_Retry(t *testing.T) {
	tests := []struct {
		name          string
		retryAttempts uint
		failures      int32
		wantRequests  int32
		wantErr       bool
	}{
		{
			name:          "no retry by default",
			retryAttempts: 0,
			failures:      1,
			wantRequests:  1,
			wantErr:       true,
		},
		{
			name:          "succeeds after a retry",
			retryAttempts: 2,
			failures:      1,
			wantRequests:  2,
		},
		{
			name:          "gives up after all attempts",
			retryAttempts: 2,
			failures:      5,
			wantRequests:  3,
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server, requests := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				if calls.Add(1) <= tt.failures {
					w.WriteHeader(http.StatusBadGateway)
					return
				}
				_, _ = w.Write([]byte(casaPage))
			})

			client := NewClient(Config{BaseURL: server.URL, RetryAttempts: tt.retryAttempts})
			got, err := client.Lookup(context.Background(), "casa")

			assert.Equal(t, tt.wantRequests, requests.Load())
			if tt.wantErr {
				var fetchErr *FetchError
				assert.ErrorAs(t, err, &fetchErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, 3)
		})
	}
}

func TestClient_Lookup_PageCache(t *testing.T) {
	cacheDir := t.TempDir()
	server, requests := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(casaPage))
	})
	client := NewClient(Config{BaseURL: server.URL, CacheDirectory: cacheDir})

	first, err := client.Lookup(context.Background(), "casa")
	require.NoError(t, err)
	second, err := client.Lookup(context.Background(), "casa")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), requests.Load())

	cached, err := os.ReadFile(filepath.Join(cacheDir, "casa.html"))
	require.NoError(t, err)
	assert.Equal(t, casaPage, string(cached))
}

func TestClient_Lookup_FailedDownloadIsNotCached(t *testing.T) {
	cacheDir := t.TempDir()
	server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	client := NewClient(Config{BaseURL: server.URL, CacheDirectory: cacheDir})

	_, err := client.Lookup(context.Background(), "casa")
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(cacheDir, "casa.html"))
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestClient_Definitions(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    []string
	}{
		{
			name: "definitions",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(casaPage))
			},
			want: []string{
				"Edificio para habitar: una casa de dos plantas .",
				"Familia, linaje.",
				"Establecimiento comercial",
			},
		},
		{
			name: "http failure collapses to an empty result",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newTestServer(t, tt.handler)
			client := NewClient(Config{BaseURL: server.URL})

			assert.Equal(t, tt.want, client.Definitions(context.Background(), "casa"))
		})
	}
}

func TestClient_Definitions_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := NewClient(Config{BaseURL: baseURL})
	assert.Equal(t, []string{}, client.Definitions(context.Background(), "casa"))
}

func TestClient_Lookup_UnexpectedContentType(t *testing.T) {
	server, requests := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":"too many requests"}`))
	})
	client := NewClient(Config{BaseURL: server.URL, RetryAttempts: 2})

	got, err := client.Lookup(context.Background(), "casa")

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Nil(t, got)
	assert.Equal(t, int32(1), requests.Load(), "parse errors are not retried")
	assert.Equal(t, []string{}, client.Definitions(context.Background(), "casa"))
}

func TestClient_Lookup_CacheReadError(t *testing.T) {
	cacheDir := t.TempDir()
	// A directory where the cached page should be makes reading it fail.
	require.NoError(t, os.MkdirAll(filepath.Join(cacheDir, "casa.html"), 0755))

	client := NewClient(Config{BaseURL: "http://127.0.0.1:0", CacheDirectory: cacheDir})
	_, err := client.Lookup(context.Background(), "casa")

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, []string{}, client.Definitions(context.Background(), "casa"))
}

func TestFetchError(t *testing.T) {
	cause := errors.New("connection refused")

	transportErr := &FetchError{Word: "casa", Err: cause}
	assert.Equal(t, `fetch "casa": connection refused`, transportErr.Error())
	assert.ErrorIs(t, transportErr, cause)

	statusErr := &FetchError{Word: "casa", StatusCode: http.StatusNotFound, Err: cause}
	assert.Equal(t, `fetch "casa": status code 404`, statusErr.Error())

	parseErr := &ParseError{Word: "casa", Err: cause}
	assert.Equal(t, `parse "casa": connection refused`, parseErr.Error())
	assert.ErrorIs(t, parseErr, cause)
}
