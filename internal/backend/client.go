// Package backend is the HTTP client for the bookings/admin/employees API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"modernband/internal/domain"
	"modernband/internal/utils"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// APIError is a non-2xx answer. Message is the body's "error" field, or "HTTP error <status>".
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// AsDomain converts client errors into domain.UpstreamError, keeping the backend message.
func AsDomain(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status == http.StatusNotFound {
			return domain.NotFoundError{Resource: "record", Err: domain.UpstreamError{Status: apiErr.Status, Msg: apiErr.Message, Err: err}}
		}
		if apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden {
			return domain.UnauthorizedError{Msg: apiErr.Message, Err: err}
		}
		return domain.UpstreamError{Status: apiErr.Status, Msg: apiErr.Message, Err: err}
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return domain.UpstreamError{Msg: "Unable to reach the booking service. Please try again.", Err: err}
}

// ErrBadResponse marks a 2xx reply whose JSON body could not be decoded.
var ErrBadResponse = errors.New("malformed response body")

type errorBody struct {
	Error string `json:"error"`
}

// do sends one JSON request. out may be nil; token adds a Bearer header when non-empty.
func (c *Client) do(ctx context.Context, method, endpoint, token string, body, out any) error {
	url := c.BaseURL + endpoint

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, endpoint, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	utils.Log.WithField("module", "BACKEND").Debugf("%s %s", method, url)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		msg := ""
		if json.Unmarshal(raw, &eb) == nil {
			msg = strings.TrimSpace(eb.Error)
		}
		if msg == "" {
			msg = fmt.Sprintf("HTTP error %d", resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "json") {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w: %w", method, endpoint, ErrBadResponse, err)
	}
	return nil
}

// Health proxies GET /health.
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	out := map[string]any{}
	if err := c.do(ctx, http.MethodGet, "/health", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
