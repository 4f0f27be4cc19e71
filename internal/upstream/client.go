package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxResponseBytes caps how much of an upstream response body is read when
// decoding the envelope.
const maxResponseBytes = 1 << 20

// Fetcher is the outbound capability the read-through orchestrator consumes.
// Implementations return the provider's envelope as-is; a non-success
// envelope is a valid result, not an error. Errors are reserved for transport
// and decoding failures.
type Fetcher interface {
	FetchRC(ctx context.Context, rcNumber, authorization string) (*Envelope, error)
}

// Client calls the RC verification provider over HTTP. The request is a form
// POST carrying the registration number, with the caller's Authorization
// header forwarded untouched.
//
// The provider enforces its own rate limits and can be slow; the client
// therefore carries an explicit timeout instead of inheriting an unbounded
// wait from the transport.
type Client struct {
	baseURL string
	path    string
	http    *http.Client
}

// NewClient constructs a Client for baseURL+path with the given timeout.
// A timeout <= 0 falls back to 30s.
func NewClient(baseURL, path string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		path:    strings.Trim(path, "/"),
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   10,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: timeout,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
	}
}

// FetchRC looks up rcNumber at the provider and decodes the response
// envelope. Non-2xx responses that still carry a decodable envelope are
// returned as that envelope so failure payloads reach the caller verbatim.
func (c *Client) FetchRC(ctx context.Context, rcNumber, authorization string) (*Envelope, error) {
	form := url.Values{"id_number": {rcNumber}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/"+c.path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("upstream: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("upstream: read response: %w", err)
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("upstream: decode response (status %d): %w", resp.StatusCode, err)
	}
	if env.StatusCode == 0 {
		env.StatusCode = resp.StatusCode
	}
	return &env, nil
}
