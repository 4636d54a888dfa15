// Package inference implements the HTTP client that obtains a binary label
// from a remote classifier endpoint, one sample per request.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/fairbench/faircheck/internal/config"
)

// labelKeys are the response fields tried, in order, to locate the label.
// The first present key wins; extra fields are ignored.
var labelKeys = []string{"inference", "prediction", "class"}

// maxErrorBody bounds how much of an unparseable body ends up in an error.
const maxErrorBody = 256

// Client obtains predictions from a classifier endpoint. It holds one
// reusable HTTP connection pool for its lifetime; release it with Close.
type Client struct {
	cfg       config.EndpointConfig
	headers   http.Header
	http      *http.Client
	closeOnce sync.Once
}

// NewClient builds a client for the given endpoint. Configured headers are
// applied to every request; a configured auth token injects
// "Authorization: Bearer <token>", overriding any header of the same name.
func NewClient(cfg config.EndpointConfig) *Client {
	headers := make(http.Header, len(cfg.Headers)+1)
	for k, v := range cfg.Headers {
		headers.Set(k, v)
	}
	if cfg.AuthToken != "" {
		headers.Set("Authorization", "Bearer "+cfg.AuthToken)
	}
	return &Client{
		cfg:     cfg,
		headers: headers,
		http:    &http.Client{Timeout: cfg.Timeout()},
	}
}

// Infer sends one sample to the endpoint and returns the coerced label.
// Exactly one attempt is made; any transport failure or non-success status
// yields a *EndpointError, and an unusable body yields a
// *ResponseFormatError.
func (c *Client) Infer(ctx context.Context, sample any) (int, error) {
	req, err := c.buildRequest(ctx, sample)
	if err != nil {
		return 0, fmt.Errorf("inference: building request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, &EndpointError{URL: c.cfg.URL, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return 0, &EndpointError{URL: c.cfg.URL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, &EndpointError{URL: c.cfg.URL, Err: err}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return 0, &ResponseFormatError{Reason: fmt.Sprintf("body is not a JSON object: %q", truncate(body))}
	}

	for _, key := range labelKeys {
		if v, ok := data[key]; ok {
			return coerceLabel(v)
		}
	}
	return 0, &ResponseFormatError{Reason: "response has none of the fields inference, prediction, or class", Value: data}
}

// Close releases the client's idle connections. Safe to call multiple times.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.http.CloseIdleConnections()
	})
}

func (c *Client) buildRequest(ctx context.Context, sample any) (*http.Request, error) {
	if c.cfg.Method == http.MethodGet {
		return c.buildGetRequest(ctx, sample)
	}
	return c.buildPostRequest(ctx, sample)
}

func (c *Client) buildPostRequest(ctx context.Context, sample any) (*http.Request, error) {
	payload, err := json.Marshal(map[string]any{"features": sample})
	if err != nil {
		return nil, fmt.Errorf("encoding features: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	c.applyHeaders(req)
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Client) buildGetRequest(ctx context.Context, sample any) (*http.Request, error) {
	u, err := url.Parse(c.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing endpoint URL: %w", err)
	}
	q := u.Query()
	encodeQuery(q, sample)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	c.applyHeaders(req)
	return req, nil
}

func (c *Client) applyHeaders(req *http.Request) {
	for k, vals := range c.headers {
		req.Header[k] = append([]string(nil), vals...)
	}
}

// encodeQuery flattens a sample into query parameters: map samples add one
// parameter per key, slice samples repeat the "features" key, and scalars
// use a single "features" parameter. Samples that need richer structure
// belong on POST.
func encodeQuery(q url.Values, sample any) {
	switch s := sample.(type) {
	case map[string]any:
		for k, v := range s {
			q.Set(k, queryValue(v))
		}
	case []any:
		for _, v := range s {
			q.Add("features", queryValue(v))
		}
	default:
		q.Set("features", queryValue(sample))
	}
}

func queryValue(v any) string {
	return fmt.Sprintf("%v", v)
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}
