package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"recruit-console/internal/pkg/logger"

	"github.com/google/uuid"
)

// TokenSource hands the client the current bearer token; empty means no
// session is established.
type TokenSource interface {
	Token() string
}

// Client talks to the recruitment backend. All authenticated calls go
// through one wrapper so a 401 from anywhere funnels into a single
// auth-failure hook; no caller implements its own 401 handling.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	tokens        TokenSource
	onAuthFailure func()
	logger        logger.ILogger
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log logger.ILogger) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
		logger: log,
	}
}

// SetAuthFailureHook installs the centralized re-authentication boundary.
// It runs before the auth error is surfaced to the caller.
func (c *Client) SetAuthFailureHook(fn func()) {
	c.onAuthFailure = fn
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// doJSON performs an authenticated JSON round trip. out may be nil for
// calls whose response body is irrelevant.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, payload interface{}, out interface{}) error {
	var bodyReader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out, true)
}

// postForm performs the unauthenticated form-encoded credential exchange.
// A 401 here is a credential rejection, not a session failure, so the
// auth-failure hook stays out of this path.
func (c *Client) postForm(ctx context.Context, path string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.send(req, out, false)
}

// postJSONNoAuth is for the open endpoints (registration).
func (c *Client) postJSONNoAuth(ctx context.Context, path string, payload interface{}, out interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), bytes.NewBuffer(raw))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.send(req, out, false)
}

// postMultipart uploads form fields plus one file under an authenticated
// multipart body.
func (c *Client) postMultipart(ctx context.Context, path string, fields map[string]string, fileField, filename string, file []byte, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("write field %s: %w", key, err)
		}
	}
	part, err := writer.CreateFormFile(fileField, filename)
	if err != nil {
		return fmt.Errorf("create file part: %w", err)
	}
	if _, err := part.Write(file); err != nil {
		return fmt.Errorf("write file part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), &buf)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, out, true)
}

// downloadRaw fetches a binary document. Returns the body bytes plus the
// Content-Type and Content-Disposition headers for the filename hint.
func (c *Client) downloadRaw(ctx context.Context, path string) ([]byte, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, nil), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}

	resp, body, err := c.roundTrip(req, true)
	if err != nil {
		return nil, nil, err
	}
	if err := c.checkStatus(resp, body, true); err != nil {
		return nil, nil, err
	}
	return body, resp.Header, nil
}

func (c *Client) send(req *http.Request, out interface{}, authed bool) error {
	resp, body, err := c.roundTrip(req, authed)
	if err != nil {
		return err
	}
	if err := c.checkStatus(resp, body, authed); err != nil {
		return err
	}
	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}

func (c *Client) roundTrip(req *http.Request, authed bool) (*http.Response, []byte, error) {
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if authed {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.logger.Warn("ApiClient", "Request failed", map[string]interface{}{
			"request_id": requestID,
			"method":     req.Method,
			"url":        req.URL.String(),
			"error":      err.Error(),
		})
		return nil, nil, &Error{Kind: KindTransport, Message: "network error, please try again", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &Error{Kind: KindTransport, Message: "network error, please try again", Err: err}
	}

	c.logger.Debug("ApiClient", "Request completed", map[string]interface{}{
		"request_id": requestID,
		"method":     req.Method,
		"url":        req.URL.String(),
		"status":     resp.StatusCode,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return resp, body, nil
}

func (c *Client) checkStatus(resp *http.Response, body []byte, authed bool) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if authed {
			if c.onAuthFailure != nil {
				c.onAuthFailure()
			}
			return &Error{Kind: KindAuth, Status: resp.StatusCode, Message: "authentication required"}
		}
		return &Error{Kind: KindRejected, Status: resp.StatusCode, Message: parseDetail(body, "invalid credentials")}
	case resp.StatusCode >= 500:
		return &Error{Kind: KindServerFault, Status: resp.StatusCode, Message: parseDetail(body, "backend error, please try again")}
	case resp.StatusCode >= 400:
		return &Error{Kind: KindRejected, Status: resp.StatusCode, Message: parseDetail(body, "request rejected")}
	}
	return nil
}
