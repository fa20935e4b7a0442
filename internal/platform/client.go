package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// SessionReader is the slice of the session store the gateway needs: the
// bearer token for outgoing requests, and the ability to clear the session
// centrally when the platform reports it expired.
type SessionReader interface {
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// Client is the typed gateway to the remote platform API. It attaches the
// bearer credential to every call and surfaces HTTP and network failures
// without swallowing them. It performs no retries; retrying is a caller
// policy.
type Client struct {
	base    string
	http    *http.Client
	session SessionReader
	log     *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger overrides the client's logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient creates a gateway for the platform API at baseURL.
func NewClient(baseURL string, session SessionReader, opts ...Option) *Client {
	c := &Client{
		base:    strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		session: session,
		log:     log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope is the platform's uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do performs one request against the platform and decodes the envelope
// into out. A success:false envelope under a 2xx status is reported
// exactly like a non-2xx failure.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	token, err := c.session.Token(ctx)
	if err != nil {
		c.log.Printf("session read failed, sending unauthenticated request: %v", err)
	} else if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if clearErr := c.session.Clear(ctx); clearErr != nil {
			c.log.Printf("failed to clear expired session: %v", clearErr)
		}
		return ErrAuthExpired
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response for %s %s: %v", ErrNetwork, method, path, err)
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 300 {
			return fmt.Errorf("decode response for %s %s: %w", method, path, err)
		}
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode >= 300 || !env.Success {
		return &APIError{Status: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data for %s %s: %w", method, path, err)
		}
	}
	return nil
}

// getJSON issues a GET and decodes the envelope data into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

// sendJSON issues a request with a JSON-encoded body.
func (c *Client) sendJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode body for %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}
	return c.do(ctx, method, path, reader, "application/json", out)
}

// sendPayload issues a request whose body is a Payload: multipart when a
// binary attachment is present, plain JSON otherwise.
func (c *Client) sendPayload(ctx context.Context, method, path string, payload Payload, out any) error {
	if payload.HasFile() {
		body, contentType, err := payload.multipartBody()
		if err != nil {
			return fmt.Errorf("encode multipart body for %s %s: %w", method, path, err)
		}
		return c.do(ctx, method, path, body, contentType, out)
	}
	return c.sendJSON(ctx, method, path, payload.jsonBody(), out)
}
