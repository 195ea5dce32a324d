// Package minerva is the REST client for the Minerva moderation backend.
package minerva

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/minervactl/internal/config"
	"github.com/heartmarshall/minervactl/pkg/ctxutil"
)

const (
	headerRequestID   = "X-Request-Id"
	defaultCSRFHeader = "X-CSRFToken"
)

// TokenSource yields the anti-forgery token for mutating requests.
type TokenSource interface {
	Token() (string, bool)
}

// Client talks to the Minerva backend over HTTP. All paths are relative to
// the configured base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	jar        http.CookieJar
	limiter    *rate.Limiter
	csrfHeader string
	csrf       TokenSource
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCookieJar attaches the session cookie jar.
func WithCookieJar(jar http.CookieJar) Option {
	return func(c *Client) { c.jar = jar }
}

// WithCSRF sets the header name and the source of the anti-forgery token.
func WithCSRF(header string, src TokenSource) Option {
	return func(c *Client) {
		if header != "" {
			c.csrfHeader = header
		}
		c.csrf = src
	}
}

// New creates a Client for cfg.BaseURL. A positive cfg.RateLimit throttles
// outgoing requests to that many per second.
func New(cfg config.BackendConfig, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		csrfHeader: defaultCSRFHeader,
		log:        logger.With("adapter", "minerva"),
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.jar != nil {
		c.httpClient.Jar = c.jar
	}
	return c
}

// BaseURL returns the backend root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// send builds and executes a request. A non-nil body is sent as JSON. The
// caller owns the response body.
func (c *Client) send(ctx context.Context, op, method, path string, body any) (*http.Response, error) {
	ctx, reqID := ctxutil.EnsureRequestID(ctx)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("minerva: %s: encode body: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("minerva: %s: create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet && method != http.MethodHead {
		c.attachCSRF(req)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("minerva: %s: rate limit: %w", op, err)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "minerva request failed",
			slog.String("op", op),
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", reqID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("minerva: %s: request failed: %w", op, err)
	}

	c.log.DebugContext(ctx, "minerva request",
		slog.String("op", op),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
		slog.String("request_id", reqID),
		slog.String("action", ctxutil.ActionFromCtx(ctx)),
	)
	return resp, nil
}

// attachCSRF adds the anti-forgery header when a token is available, and the
// Referer the backend checks on secure origins.
func (c *Client) attachCSRF(req *http.Request) {
	req.Header.Set("Referer", c.baseURL+"/")
	if c.csrf == nil {
		return
	}
	if token, ok := c.csrf.Token(); ok {
		req.Header.Set(c.csrfHeader, token)
	}
}

// do executes the request and returns the body of a 2xx response. Any other
// status becomes an *APIError.
func (c *Client) do(ctx context.Context, op, method, path string, body any) ([]byte, error) {
	resp, err := c.send(ctx, op, method, path, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("minerva: %s: read body: %w", op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("minerva: %s: %w", op, newAPIError(resp.StatusCode, raw))
	}
	return raw, nil
}

// doJSON is do followed by decoding the body into out. An empty body leaves
// out untouched.
func (c *Client) doJSON(ctx context.Context, op, method, path string, body, out any) error {
	raw, err := c.do(ctx, op, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("minerva: %s: decode json: %w", op, err)
	}
	return nil
}
