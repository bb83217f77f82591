// ABOUTME: HTTP client for the BarberSlot booking API
// ABOUTME: Wraps API calls with typed error handling for CLI usage

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client is the API client for the BarberSlot backend
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken sets the bearer token used for authenticated requests.
// An empty string clears it.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the currently configured bearer token
func (c *Client) Token() string {
	return c.token
}

// BaseURL returns the backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// errorResponse is the API's error body shape
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}

// do issues a JSON request and decodes the response into out (if non-nil).
// extraHeaders may be nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any, extraHeaders map[string]string) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, v := range extraHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.handleErrorResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out, nil)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out, nil)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out, nil)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// handleRequestError converts transport errors to typed, user-friendly errors
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return &APIError{Kind: KindNetwork, Message: "request canceled"}
	}
	if ctx.Err() == context.DeadlineExceeded {
		return &APIError{Kind: KindNetwork, Message: "request timed out"}
	}
	return &APIError{
		Kind:    KindNetwork,
		Message: fmt.Sprintf("cannot connect to backend at %s", c.baseURL),
		cause:   err,
	}
}

// handleErrorResponse parses API error responses into typed errors
func (c *Client) handleErrorResponse(resp *http.Response) error {
	kind := kindForStatus(resp.StatusCode)

	var errResp errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error == "" {
		return &APIError{
			Kind:       kind,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("backend returned status %d", resp.StatusCode),
		}
	}
	return &APIError{
		Kind:       kind,
		StatusCode: resp.StatusCode,
		Message:    errResp.Error,
		Details:    errResp.Details,
	}
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status >= 400 && status < 500:
		return KindValidation
	default:
		return KindServer
	}
}
