// Package analytics wraps HTTP access to the internal analytics service.
// Calls are ordinary blocking request/response exchanges with a client-side
// timeout; the caller receives the full status and body and performs its
// own error classification.
package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const defaultTimeout = 30 * time.Second

// Response is a fully received upstream reply. Body is always the complete
// payload; nothing is streamed to callers.
type Response struct {
	Status int
	Body   []byte
}

// OK reports whether the status is in the 2xx class.
func (r *Response) OK() bool { return r.Status >= 200 && r.Status < 300 }

type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger
}

// NewClient builds a Client for the given base URL. A default timeout is
// applied when none is provided.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		base: baseURL,
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("analytics: marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return nil, fmt.Errorf("analytics: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("analytics call failed")
		return nil, fmt.Errorf("analytics: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("analytics body read failed")
		return nil, fmt.Errorf("analytics: read response: %w", err)
	}

	return &Response{Status: resp.StatusCode, Body: payload}, nil
}
