// Package gateway is the single dispatch surface for requests to the supply
// chain API. It attaches the stored credential to outbound requests and turns
// authentication rejections into session-invalidation events.
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
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/supplychain-service/internal/credential"
)

// InvalidatedFunc is called when the server rejects the stored credential.
type InvalidatedFunc func()

// Client dispatches all API requests for one base URL.
type Client struct {
	baseURL string
	http    *http.Client
	creds   credential.Store
	logger  *zap.Logger

	mu            sync.Mutex
	onInvalidated InvalidatedFunc
}

// NewClient builds a client. creds supplies the bearer credential for
// outbound requests; requests go out anonymous while the store is empty.
func NewClient(baseURL string, timeout time.Duration, creds credential.Store, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
		logger:  logger,
	}
}

// OnSessionInvalidated registers the observer called when a request comes
// back 401. At most one observer is held; registering replaces the previous
// one.
func (c *Client) OnSessionInvalidated(fn InvalidatedFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onInvalidated = fn
}

// Get issues a GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// Download issues a GET and returns the raw body, for endpoints that serve
// files rather than JSON.
func (c *Client) Download(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestSetup, err)
	}
	c.attachCredential(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoResponse, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidateSession()
		return nil, &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}
	return io.ReadAll(resp.Body)
}

// FormPost issues a form-encoded POST. The token exchange endpoint takes its
// payload this way rather than as JSON.
func (c *Client) FormPost(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestSetup, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.send(req, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encode body: %v", ErrRequestSetup, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestSetup, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	c.attachCredential(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoResponse, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidateSession()
		return &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) attachCredential(req *http.Request) {
	if c.creds == nil {
		return
	}
	token, err := c.creds.Load()
	if err != nil {
		c.logger.Warn("credential load failed, sending anonymous request", zap.Error(err))
		return
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// invalidateSession clears the credential slot and notifies the observer.
// Called once per 401 response.
func (c *Client) invalidateSession() {
	if c.creds != nil {
		if err := c.creds.Clear(); err != nil {
			c.logger.Warn("failed to clear rejected credential", zap.Error(err))
		}
	}

	c.mu.Lock()
	fn := c.onInvalidated
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// errorMessage extracts a human-readable message from an error response body.
// The API reports failures as {"detail": ...} or {"error": {"message": ...}}.
func errorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var detail struct {
		Detail string `json:"detail"`
		Error  struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &detail); err == nil {
		if detail.Detail != "" {
			return detail.Detail
		}
		if detail.Error.Message != "" {
			return detail.Error.Message
		}
	}
	return strings.TrimSpace(string(raw))
}
