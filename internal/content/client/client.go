// Package client consumes the content API over HTTP.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/gokatarajesh/digilit/internal/content"
)

// Failure kinds reported by FetchError.
const (
	KindTransport = "transport"
	KindStatus    = "status"
	KindDecode    = "decode"
	KindShape     = "shape"
)

// FetchError describes a failed collection fetch.
type FetchError struct {
	Collection string
	Kind       string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.Collection, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %s: %v", e.Collection, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) retryable() bool {
	return e.Kind == KindTransport || (e.Kind == KindStatus && e.StatusCode >= 500)
}

// Options configures the client.
type Options struct {
	HTTPClient *http.Client
	MaxRetries uint64
	// RetryBase is the first backoff interval, doubled on each retry.
	RetryBase time.Duration
}

// Client fetches the statistics, glossary and quiz collections.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries uint64
	retryBase  time.Duration
}

func New(baseURL string, opts Options) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 5 * time.Second}
	}
	if opts.RetryBase <= 0 {
		opts.RetryBase = 200 * time.Millisecond
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: opts.HTTPClient,
		maxRetries: opts.MaxRetries,
		retryBase:  opts.RetryBase,
	}
}

func (c *Client) FetchStatistics(ctx context.Context) ([]content.Statistic, error) {
	return fetch(ctx, c, content.CollectionStatistics, "/api/statistics", content.Statistic.Validate)
}

func (c *Client) FetchGlossary(ctx context.Context) ([]content.GlossaryTerm, error) {
	return fetch(ctx, c, content.CollectionGlossary, "/api/glossary", content.GlossaryTerm.Validate)
}

func (c *Client) FetchQuiz(ctx context.Context) ([]content.QuizQuestion, error) {
	return fetch(ctx, c, content.CollectionQuiz, "/api/quiz", content.QuizQuestion.Validate)
}

func fetch[T any](ctx context.Context, c *Client, collection, path string, validate func(T) error) ([]T, error) {
	var items []T
	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(c.retryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		got, err := getOnce[T](ctx, c, collection, path)
		if err != nil {
			var fe *FetchError
			if errors.As(err, &fe) && fe.retryable() {
				return retry.RetryableError(err)
			}
			return err
		}
		items = got
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := validate(item); err != nil {
			return nil, &FetchError{Collection: collection, Kind: KindShape, Err: err}
		}
	}
	return items, nil
}

func getOnce[T any](ctx context.Context, c *Client, collection, path string) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &FetchError{Collection: collection, Kind: KindTransport, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Collection: collection, Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, &FetchError{Collection: collection, Kind: KindStatus, StatusCode: resp.StatusCode}
	}

	var items []T
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		kind := KindDecode
		if errors.Is(err, content.ErrInvalidRecord) {
			kind = KindShape
		}
		return nil, &FetchError{Collection: collection, Kind: kind, Err: err}
	}
	if items == nil {
		return nil, &FetchError{Collection: collection, Kind: KindShape, Err: errors.New("expected a JSON array")}
	}
	return items, nil
}
