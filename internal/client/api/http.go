package api

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

	"github.com/google/uuid"

	"github.com/mjacquet/eventdesk/internal/common"
	"github.com/mjacquet/eventdesk/internal/logging"
)

// TokenProvider returns the current bearer token, or "" when there is none.
// The Core calls it on every request so the header always reflects the
// latest persisted session.
type TokenProvider func(ctx context.Context) string

// Core is the shared HTTP layer under the per-resource clients.
type Core struct {
	baseURL        string
	http           *http.Client
	log            logging.Logger
	token          TokenProvider
	onUnauthorized func(ctx context.Context)
}

// Option configures a Core.
type Option func(*Core)

// WithTokenProvider wires the session token into outbound requests.
func WithTokenProvider(fn TokenProvider) Option {
	return func(c *Core) { c.token = fn }
}

// WithUnauthorizedHook registers a callback fired on every 401 response,
// before the error is returned to the caller. Used to force a logout.
func WithUnauthorizedHook(fn func(ctx context.Context)) Option {
	return func(c *Core) { c.onUnauthorized = fn }
}

// NewCore builds the shared HTTP layer. baseURL is the root of the resource
// store, e.g. "http://localhost:3000".
func NewCore(baseURL string, timeout time.Duration, log logging.Logger, opts ...Option) *Core {
	c := &Core{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs one JSON request. body and out may be nil. out receives the
// decoded response body on 2xx.
func (c *Core) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if c.token != nil {
		if token := c.token(ctx); token != "" {
			req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, common.ErrUnavailable)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(ctx, method, path, resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		c.log.Error(ctx, "failed to decode response", "method", method, "path", path, "error", err)
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Core) checkStatus(ctx context.Context, method, path string, resp *http.Response) error {
	status := resp.StatusCode
	if status >= 200 && status < 300 {
		return nil
	}

	switch {
	case status == http.StatusUnauthorized:
		c.log.Error(ctx, "token invalid or expired", "method", method, "path", path)
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		return fmt.Errorf("%s %s: %w", method, path, common.ErrUnauthorized)
	case status == http.StatusForbidden:
		c.log.Error(ctx, "access forbidden", "method", method, "path", path)
	case status == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, common.ErrNotFound)
	case status >= 500:
		c.log.Error(ctx, "server error", "method", method, "path", path, "status", status)
	}
	return fmt.Errorf("%s %s: unexpected status %d", method, path, status)
}
