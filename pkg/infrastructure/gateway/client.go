// Package gateway implements the remote data gateway over the hosted
// inventory API. All identifier normalization happens here; nothing
// downstream ever sees the wire's heterogeneous id keys.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Mr-M4sh/inventory-management-app/pkg/domain/repositories"
)

const defaultTimeout = 10 * time.Second

// StatusError reports a non-2xx response from the API
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api returned status %d: %s", e.Code, e.Body)
}

// Client talks JSON to the remote inventory API. It issues exactly one
// attempt per call; there are no retries.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  zerolog.Logger
}

// NewClient creates a Client for the given base URL, e.g.
// "https://braminventory-backend.onrender.com"
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Products returns the gateway for the product collection
func (c *Client) Products() repositories.ProductGateway { return &productGateway{c} }

// Customers returns the gateway for the customer collection
func (c *Client) Customers() repositories.CustomerGateway { return &customerGateway{c} }

// Orders returns the gateway for the sales collection
func (c *Client) Orders() repositories.OrderGateway { return &orderGateway{c} }

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s payload: %w", method, path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("method", method).Str("path", path).Msg("api request failed")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s %s: %w", method, path, repositories.ErrNotFound)
	}
	if resp.StatusCode >= 400 {
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	return data, nil
}

func resourcePath(collection string, id string) string {
	return "/api/" + collection + "/" + url.PathEscape(id)
}

func emptyBody(data []byte) bool {
	return len(bytes.TrimSpace(data)) == 0
}
