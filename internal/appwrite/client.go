// Package appwrite is a thin client for the managed backend the Aora app
// talks to. It owns request shaping, the process-wide session secret, and
// decoding of the facade's error envelope; everything stateful lives on the
// remote side.
package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/aora/client/internal/logging"
)

// responseFormat pins the response schema version the client understands.
const responseFormat = "1.6.0"

// Config identifies the project this client addresses.
type Config struct {
	Endpoint  string
	ProjectID string
	Platform  string
}

// Client is the base transport shared by the account, database, storage, and
// avatar services. The active session secret is the only mutable state; it is
// set when an email session is created and cleared when it is deleted.
type Client struct {
	endpoint   string
	projectID  string
	platform   string
	httpClient *http.Client
	limiter    *rate.Limiter

	mu      sync.RWMutex
	session string
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLimiter paces outgoing requests with the provided limiter.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// New constructs a client addressing the configured endpoint and project.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		endpoint:   strings.TrimSuffix(cfg.Endpoint, "/"),
		projectID:  cfg.ProjectID,
		platform:   cfg.Platform,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetSession installs a previously issued session secret.
func (c *Client) SetSession(secret string) {
	c.mu.Lock()
	c.session = secret
	c.mu.Unlock()
}

// Session returns the active session secret, or an empty string.
func (c *Client) Session() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// ClearSession forgets the active session secret.
func (c *Client) ClearSession() {
	c.mu.Lock()
	c.session = ""
	c.mu.Unlock()
}

// HasSession reports whether a session secret is installed.
func (c *Client) HasSession() bool {
	return c.Session() != ""
}

// url joins the endpoint, path, and optional query parameters.
func (c *Client) url(path string, query url.Values) string {
	u := c.endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// call issues a JSON request against the facade and decodes the response
// into out when provided.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// send applies project headers and the session secret, waits for the pacing
// limiter, and executes the request. Non-2xx responses decode into *Error.
func (c *Client) send(req *http.Request, out any) error {
	ctx := req.Context()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("await request slot: %w", err)
		}
	}

	req.Header.Set("X-Appwrite-Project", c.projectID)
	req.Header.Set("X-Appwrite-Response-Format", responseFormat)
	if c.platform != "" {
		req.Header.Set("Origin", "appwrite-"+c.platform)
	}
	if session := c.Session(); session != "" {
		req.Header.Set("X-Appwrite-Session", session)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	logging.FromContext(ctx).Debug("facade call completed",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}
