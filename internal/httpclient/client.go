package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"petstore/internal/logging"
)

// HTTPError represents a non-2xx response with the body captured for debugging.
type HTTPError struct {
	StatusCode int
	Body       []byte
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("http %d", e.StatusCode)
}

type Client struct {
	baseURL *url.URL
	client  *http.Client
	logger  logging.Logger
}

// New creates an instrumented HTTP client for talking to an external service.
// baseURL should be like "http://petstore.internal/v1" (no trailing slash).
func New(baseURL string, timeout time.Duration, logger logging.Logger) (*Client, error) {
	return NewWithTransport(baseURL, timeout, http.DefaultTransport, logger)
}

// NewWithTransport is New with a custom round tripper underneath the
// otelhttp instrumentation.
func NewWithTransport(baseURL string, timeout time.Duration, rt http.RoundTripper, logger logging.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse baseURL: %w", err)
	}

	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(rt),
	}

	return &Client{
		baseURL: u,
		client:  httpClient,
		logger:  logger,
	}, nil
}

// buildURL appends a relative path to the base URL's path and sets the
// optional query parameters.
func (c *Client) buildURL(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	u.RawPath = ""
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// Do sends payload (JSON encoded, when non-nil) and decodes a JSON response
// into out (when non-nil and the body is not empty). It returns the response
// headers. If the status code >= 400, it returns *HTTPError.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, payload any, out any) (http.Header, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, query), body)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Error("external http error",
			"status", resp.StatusCode,
			"method", method,
			"path", path,
		)
		return resp.Header, &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       respBody,
			Message:    string(bytes.TrimSpace(respBody)),
		}
	}

	if len(respBody) == 0 || out == nil {
		return resp.Header, nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return resp.Header, fmt.Errorf("unmarshal body: %w", err)
	}

	return resp.Header, nil
}

// GetJSON performs a GET and decodes the JSON response into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	_, err := c.Do(ctx, http.MethodGet, path, query, nil, out)
	return err
}

// PostJSON sends a JSON body and decodes a JSON response into out.
func (c *Client) PostJSON(ctx context.Context, path string, payload any, out any) error {
	_, err := c.Do(ctx, http.MethodPost, path, nil, payload, out)
	return err
}
