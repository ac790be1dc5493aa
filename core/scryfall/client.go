package scryfall

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"
)

// ErrNotFound is returned when the API has no card for the requested
// set/number/language combination.
var ErrNotFound = errors.New("card not found")

// Client talks to the Scryfall REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	backoff    time.Duration
}

// NewClient creates a Scryfall client based on the configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 15
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = 3
	}

	backoff := time.Duration(cfg.BackoffMillis) * time.Millisecond
	if backoff <= 0 {
		backoff = time.Second
	}

	base := cfg.BaseURL
	if base == "" {
		base = "https://api.scryfall.com"
	}

	// Strict transport timeouts, same shape as the storage client.
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
		maxRetries: retries,
		backoff:    backoff,
	}
}

// Card fetches one card document by set code and collector number. The
// language segment is appended only when lang is non-empty, matching the two
// query shapes of /cards/{set}/{number} and /cards/{set}/{number}/{lang}.
func (c *Client) Card(ctx context.Context, setCode, collectorNumber, lang string) (*Card, error) {
	path := fmt.Sprintf("/cards/%s/%s", url.PathEscape(setCode), url.PathEscape(collectorNumber))
	if lang != "" {
		path += "/" + url.PathEscape(lang)
	}
	return c.get(ctx, path)
}

func (c *Client) get(ctx context.Context, path string) (*Card, error) {
	var lastStatus int
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("scryfall request failed: %w", err)
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			var card Card
			err := json.NewDecoder(resp.Body).Decode(&card)
			resp.Body.Close()
			if err != nil {
				return nil, fmt.Errorf("failed to decode scryfall response: %w", err)
			}
			return &card, nil
		case resp.StatusCode == http.StatusNotFound:
			resp.Body.Close()
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		case retryable(resp.StatusCode):
			resp.Body.Close()
			lastStatus = resp.StatusCode
			if attempt < c.maxRetries {
				select {
				case <-time.After(c.backoff * time.Duration(attempt)):
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			}
		default:
			resp.Body.Close()
			return nil, fmt.Errorf("scryfall returned status %d for %s", resp.StatusCode, path)
		}
	}
	return nil, fmt.Errorf("scryfall returned status %d for %s after %d attempts", lastStatus, path, c.maxRetries)
}

func retryable(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
