// Package api is the typed gateway client for the placement platform REST
// API. One method per backend operation, no retry, no batching; errors
// propagate to the caller carrying the backend payload.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/cache"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/config"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/errors"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/telemetry"

	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("placement-dashboard/api")

// Client issues typed REST calls against the platform API. The session rides
// on an HttpOnly cookie held by the jar, with a bearer-token fallback set by
// the session manager after login or token rehydration.
type Client struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
	config  *config.Config
	cache   cache.Cache

	mu    sync.RWMutex
	token string
}

func NewClient(logger *zap.Logger, config *config.Config, c cache.Cache) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Internal("creating cookie jar", err)
	}

	return &Client{
		client: &http.Client{
			Timeout: config.APITimeout,
			Jar:     jar,
		},
		baseURL: config.APIBaseURL,
		logger:  logger,
		config:  config,
		cache:   c,
	}, nil
}

// SetToken installs the bearer token sent on every subsequent request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken drops the bearer token; cookie auth (if any) still applies.
func (c *Client) ClearToken() {
	c.SetToken("")
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do issues one request and decodes the JSON response into out (out may be
// nil for empty responses). Status >= 400 is decoded into an APIError so the
// backend's message and field errors reach the caller.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Internal("marshaling request body", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return errors.Internal("creating request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("failed to execute request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return errors.Unavailable("executing request", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("failed to close response body", zap.Error(cerr))
		}
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.decodeError(resp, method, path)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("failed to decode response",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return errors.Internal("decoding response", err)
	}

	return nil
}

func (c *Client) decodeError(resp *http.Response, method, path string) error {
	apiErr := &errors.APIError{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	c.logger.Warn("api error response",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status_code", resp.StatusCode),
		zap.String("message", apiErr.Message))

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.Unauthorized(apiErr.Message, apiErr)
	case http.StatusNotFound:
		return errors.NotFound(apiErr.Message, apiErr)
	case http.StatusTooManyRequests:
		return errors.RateLimit(apiErr.Message, apiErr)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errors.InvalidInput(apiErr.Message, apiErr)
	default:
		return errors.Internal(fmt.Sprintf("unexpected status code: %d", resp.StatusCode), apiErr)
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
