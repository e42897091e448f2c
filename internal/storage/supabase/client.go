// Package supabase implements storage.Store against a hosted Supabase
// project, using its PostgREST endpoint and two SQL RPCs.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hydrohomies/waterbot/internal/storage"
)

// Ensure Client implements storage.Store
var _ storage.Store = (*Client)(nil)

// Client is a thin façade over the Supabase REST API. Each method is one
// HTTP round trip; there are no retries and no client-side transactions.
type Client struct {
	baseURL string
	key     string
	http    *http.Client
}

// New creates a Client for the given project URL and service key.
func New(baseURL, key string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Close implements storage.Store. The underlying http.Client holds no
// resources that need explicit release.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do issues one request against the REST endpoint. The body, when non-nil,
// is JSON-encoded; extra headers (e.g. Prefer) are applied on top of the
// auth headers. The response body is returned for 2xx statuses, otherwise
// an error carrying the status and a body snippet.
func (c *Client) do(ctx context.Context, method, path string, body any, headers map[string]string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s %s returned %d: %s", method, path, resp.StatusCode, snippet(data))
	}
	return data, nil
}

// rpc calls a Postgres function exposed through PostgREST.
func (c *Client) rpc(ctx context.Context, name string, args any, out any) error {
	data, err := c.do(ctx, http.MethodPost, "/rest/v1/rpc/"+name, args, nil)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s result: %w", name, err)
	}
	return nil
}

func snippet(data []byte) string {
	const max = 200
	s := strings.TrimSpace(string(data))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
