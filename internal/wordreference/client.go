// Package wordreference scrapes definitions from WordReference's Spanish dictionary pages.
package wordreference

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
)

type Config struct {
	BaseURL string
	Headers map[string]string
	// Timeout of a single request. Zero means no timeout.
	Timeout time.Duration
	// RetryAttempts is the number of extra requests made after a failed download.
	RetryAttempts  uint
	RetryDelay     time.Duration
	CacheDirectory string
}

type Client struct {
	config     Config
	httpClient *resty.Client
	pageCache  *PageCache
}

func NewClient(config Config) *Client {
	httpClient := resty.New().
		SetHeaders(config.Headers)
	if config.Timeout > 0 {
		httpClient.SetTimeout(config.Timeout)
	}

	client := &Client{
		config:     config,
		httpClient: httpClient,
	}
	if config.CacheDirectory != "" {
		client.pageCache = NewPageCache(config.CacheDirectory)
	}
	return client
}

func (c *Client) pageURL(word string) string {
	return strings.TrimSuffix(c.config.BaseURL, "/") + "/" + url.PathEscape(word)
}

func (c *Client) download(ctx context.Context, word string) ([]byte, error) {
	pageURL := c.pageURL(word)
	slog.Default().Debug("requesting definition page", "word", word, "url", pageURL)

	res, err := c.httpClient.R().
		SetContext(ctx).
		Get(pageURL)
	if err != nil {
		return nil, &FetchError{Word: word, Err: err}
	}
	if !res.IsSuccess() {
		return nil, &FetchError{
			Word:       word,
			StatusCode: res.StatusCode(),
			Err:        fmt.Errorf("status code: %d, url: %s", res.StatusCode(), pageURL),
		}
	}
	// Blocked or throttled requests are answered with a JSON or plain text body.
	if contentType := res.Header().Get("Content-Type"); contentType != "" && !strings.Contains(contentType, "html") {
		return nil, &ParseError{Word: word, Err: fmt.Errorf("unexpected content type %q", contentType)}
	}
	return res.Body(), nil
}

func (c *Client) downloadWithRetry(ctx context.Context, word string) ([]byte, error) {
	var body []byte
	err := retry.Do(
		func() error {
			contents, err := c.download(ctx, word)
			if err != nil {
				return err
			}
			body = contents
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.config.RetryAttempts+1),
		retry.Delay(c.config.RetryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			var fetchErr *FetchError
			return errors.As(err, &fetchErr)
		}),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Info("definition page request attempt failed",
				"word", word,
				"attempt", n+1,
				"error", err)
		}),
	)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) page(ctx context.Context, word string) ([]byte, error) {
	if c.pageCache == nil {
		return c.downloadWithRetry(ctx, word)
	}
	return c.pageCache.fetch(word, func() ([]byte, error) {
		return c.downloadWithRetry(ctx, word)
	})
}

// Lookup downloads the definition page of word and extracts its definitions.
// Download failures are returned as *FetchError and processing failures as *ParseError.
func (c *Client) Lookup(ctx context.Context, word string) ([]string, error) {
	body, err := c.page(ctx, word)
	if err != nil {
		var fetchErr *FetchError
		var parseErr *ParseError
		if errors.As(err, &fetchErr) || errors.As(err, &parseErr) {
			return nil, err
		}
		return nil, &FetchError{Word: word, Err: err}
	}

	definitions, err := ParseDefinitions(bytes.NewReader(body))
	if err != nil {
		return nil, &ParseError{Word: word, Err: err}
	}
	return definitions, nil
}

// Definitions returns the definitions of word, or an empty slice when they
// could not be fetched or parsed. Failures are logged.
func (c *Client) Definitions(ctx context.Context, word string) []string {
	definitions, err := c.Lookup(ctx, word)
	if err == nil {
		return definitions
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		slog.Default().Error("failed to process the definition page", "word", word, "error", err)
	} else {
		slog.Default().Error("failed to request the definition page", "word", word, "error", err)
	}
	return []string{}
}
