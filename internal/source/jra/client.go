package jra

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"

	"racing_analyzer/internal/metrics"
)

// Page labels the kind of upstream page for logs and metrics.
type Page string

const (
	PageListing Page = "listing"
	PageDetail  Page = "detail"
	PageOdds    Page = "odds"
)

const maxBodyBytes = 8 << 20

// ClientConfig holds HTTP fetch settings.
type ClientConfig struct {
	Timeout     time.Duration
	MaxAttempts int
	RetryDelay  time.Duration
	UserAgent   string
}

// Client fetches raw pages with a per-attempt timeout and a bounded,
// fixed-delay retry on transient failures.
type Client struct {
	httpClient  *http.Client
	maxAttempts int
	retryDelay  time.Duration
	userAgent   string
	metrics     *metrics.Recorder
	logger      *slog.Logger
}

func NewClient(cfg ClientConfig, recorder *metrics.Recorder, logger *slog.Logger) *Client {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		maxAttempts: maxAttempts,
		retryDelay:  cfg.RetryDelay,
		userAgent:   cfg.UserAgent,
		metrics:     recorder,
		logger:      logger,
	}
}

// Fetch returns the UTF-8 decoded body of url. Network errors, timeouts and
// any status outside 2xx/3xx are retried up to MaxAttempts; the last failure
// comes back as a Permanent *FetchError. Context cancellation is returned as is.
func (c *Client) Fetch(ctx context.Context, page Page, url string) ([]byte, error) {
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		start := time.Now()
		var body []byte
		body, err = c.doRequest(ctx, url)
		c.metrics.RecordFetchAttempt(string(page), time.Since(start), err)
		if err == nil {
			return body, nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		if fe, ok := AsFetchError(err); ok && !fe.Temporary() {
			return nil, err
		}

		if attempt == c.maxAttempts {
			break
		}

		c.logger.Warn("request failed, retrying",
			"page", page,
			"attempt", attempt,
			"delay", c.retryDelay,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.retryDelay):
		}
	}

	final := &FetchError{URL: url, Kind: Permanent, Attempts: c.maxAttempts, Err: err}
	if fe, ok := AsFetchError(err); ok {
		final.StatusCode = fe.StatusCode
		final.Err = fe.Err
	}
	return nil, final
}

func (c *Client) doRequest(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Kind: Permanent, Attempts: 1, Err: fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("Accept", "text/html")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Kind: Transient, Attempts: 1, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Kind:       Transient,
			Attempts:   1,
			Err:        errors.New("unexpected status"),
		}
	}

	reader, err := charset.NewReader(io.LimitReader(resp.Body, maxBodyBytes), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, &FetchError{URL: url, Kind: Transient, Attempts: 1, Err: fmt.Errorf("decode body: %w", err)}
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, &FetchError{URL: url, Kind: Transient, Attempts: 1, Err: fmt.Errorf("read body: %w", err)}
	}

	return body, nil
}

// Close releases idle keep-alive connections. The client stays usable.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
