package relaypulse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"
)

// StatusURL is the only endpoint the client talks to.
const StatusURL = "https://relaypulse.top/api/status?period=24h"

// StatusFetcher defines the interface for fetching the RelayPulse status report.
// This interface is implemented by *Client and can be used for testing.
type StatusFetcher interface {
	FetchStatus(ctx context.Context) (Report, error)
}

// Ensure Client implements StatusFetcher at compile time.
var _ StatusFetcher = (*Client)(nil)

// Client performs status round trips against StatusURL.
type Client struct {
	url  string
	http *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithTimeout bounds each round trip. Zero, the default, means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithTransport replaces the HTTP transport used for the round trip.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		if rt != nil {
			c.http.Transport = rt
		}
	}
}

// NewClient builds a Client for StatusURL.
func NewClient(opts ...Option) *Client {
	c := &Client{
		url:  StatusURL,
		http: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchStatus issues one GET to StatusURL and parses the body as JSON. Every
// failure is a *FetchError; nothing is retried.
func (c *Client) FetchStatus(ctx context.Context) (Report, error) {
	if c == nil {
		return Report{}, &FetchError{Kind: KindTransport, Err: errors.New("client is nil")}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return Report{}, &FetchError{Kind: KindTransport, Err: fmt.Errorf("create request: %w", err)}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Report{}, &FetchError{Kind: KindTransport, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Report{}, &FetchError{Kind: KindDecode, Err: fmt.Errorf("read response body: %w", err)}
	}
	if !utf8.Valid(body) {
		return Report{}, &FetchError{Kind: KindDecode, Err: errors.New("decode response body: not valid UTF-8")}
	}

	root, err := parseTree(body)
	if err != nil {
		return Report{}, &FetchError{Kind: KindParse, Err: fmt.Errorf("parse response: %w", err)}
	}
	return Report{Root: root}, nil
}

// parseTree decodes exactly one JSON document. Numbers are kept as
// json.Number so large integers survive unchanged.
func parseTree(body []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var root any
	if err := decoder.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty body")
		}
		return nil, err
	}
	var extra any
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("trailing data after document at offset %d", decoder.InputOffset())
	}
	return root, nil
}
