// Package helius implements txmonitor.TransactionFetcher on top of the Helius
// enhanced transactions REST API.
package helius

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gabapcia/alertforge/internal/pkg/logger"
	transporthttp "github.com/gabapcia/alertforge/internal/pkg/transport/http"
	"github.com/gabapcia/alertforge/internal/txmonitor"

	"github.com/hashicorp/go-retryablehttp"
)

// DefaultBaseURL is the public Helius v0 API endpoint.
const DefaultBaseURL = "https://api.helius.xyz/v0"

// maxErrorBody bounds how much of an error response is kept in the error message.
const maxErrorBody = 512

var (
	// ErrRequestFailed indicates the request never produced a response.
	ErrRequestFailed = errors.New("indexer request failed")

	// ErrUnexpectedStatus indicates the API answered with a non-2xx status.
	ErrUnexpectedStatus = errors.New("indexer returned unexpected status")

	// ErrInvalidResponse indicates the body is not a JSON array.
	ErrInvalidResponse = errors.New("indexer returned an invalid response")
)

// client fetches enhanced transactions for an address.
type client struct {
	baseURL    string
	apiKey     string
	httpClient *retryablehttp.Client
}

// Ensure client implements the txmonitor.TransactionFetcher interface at compile time.
var _ txmonitor.TransactionFetcher = (*client)(nil)

// Option configures the client.
type Option func(*client)

// WithBaseURL overrides DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(c *client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithHTTPClient replaces the default single-attempt HTTP client.
func WithHTTPClient(h *retryablehttp.Client) Option {
	return func(c *client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// NewClient creates a Helius client authenticated with apiKey.
func NewClient(apiKey string, opts ...Option) *client {
	c := &client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: transporthttp.NewClient(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchTransactions returns up to limit transactions touching address, newest
// first.
//
// Records that cannot be decoded at all are skipped; fields with missing or
// unexpected values decode to their zero value.
func (c *client) FetchTransactions(ctx context.Context, address string, limit int) ([]txmonitor.Transaction, error) {
	endpoint, err := url.JoinPath(c.baseURL, "addresses", address, "transactions")
	if err != nil {
		return nil, fmt.Errorf("%w: build url: %w", ErrRequestFailed, err)
	}

	query := url.Values{}
	query.Set("api-key", c.apiKey)
	query.Set("limit", strconv.Itoa(limit))

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, c.redact(err.Error()))
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, c.redact(err.Error()))
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, res.StatusCode, c.redact(strings.TrimSpace(string(body))))
	}

	var records []json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	txs := make([]txmonitor.Transaction, 0, len(records))
	for i, raw := range records {
		var t transaction
		if err := json.Unmarshal(raw, &t); err != nil {
			logger.Warn(ctx, "skipping malformed indexer record", "wallet.address", address, "record.index", i, "error", err)
			continue
		}
		txs = append(txs, t.toTransaction())
	}

	return txs, nil
}

// redact removes the API key from messages that may embed the request URL.
func (c *client) redact(msg string) string {
	if c.apiKey == "" {
		return msg
	}
	return strings.ReplaceAll(msg, c.apiKey, "REDACTED")
}
