package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dulpromax/dulpromax-b2b/pkg/httpclient"
	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is used when New receives an empty base URL.
	DefaultBaseURL = "https://ventas-bfzl.onrender.com"
	// DefaultTimeout bounds every call made through the default transport.
	DefaultTimeout = 30 * time.Second

	headerContentType = "Content-Type"
	headerRequestID   = "X-Request-Id"
	contentTypeJSON   = "application/json"
)

// Client calls the catalog REST API. It holds no mutable state after New and
// is safe for concurrent use.
type Client struct {
	baseURL string
	timeout time.Duration
	http    httpclient.Client
	log     Logger
}

// RequestOptions configures a single call made through Request.
type RequestOptions struct {
	// Method defaults to GET.
	Method string
	// Headers are merged over the default JSON Content-Type.
	Headers map[string]string
	Query   url.Values
	// Body is forwarded unmodified.
	Body any
}

// New constructs a Client for baseURL. An empty baseURL falls back to DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = noopLogger{}
	}
	if c.http == nil {
		c.http = httpclient.NewRestyClient(c.timeout)
	}

	c.log.InfoObj("api client initialized", "api_client", map[string]any{
		"base_url":   c.baseURL,
		"timeout_ms": c.timeout.Milliseconds(),
	})
	return c
}

// BaseURL returns the base URL every request is resolved against.
func (c *Client) BaseURL() string { return c.baseURL }

// Request issues a call to baseURL+endpoint and decodes a successful body into out.
//
// out may be nil to discard the body, or *json.RawMessage to receive it verbatim.
// Failures are *TransportError or *HTTPStatusError.
func (c *Client) Request(ctx context.Context, endpoint string, opts RequestOptions, out any) error {
	return c.do(ctx, endpoint, endpoint, opts, out)
}

// URL returns the absolute URL for endpoint.
func (c *Client) URL(endpoint string) string {
	return c.baseURL + endpoint
}

func (c *Client) do(ctx context.Context, route, endpoint string, opts RequestOptions, out any) error {
	if ctx == nil {
		ctx = context.Background()
	}
	method := strings.ToUpper(strings.TrimSpace(opts.Method))
	if method == "" {
		method = http.MethodGet
	}
	target := c.URL(endpoint)
	headers := mergeHeaders(opts.Headers)

	c.log.DebugObj("api request", "api_request", map[string]any{
		"method":     method,
		"url":        target,
		"request_id": headers[headerRequestID],
	})

	start := time.Now()
	resp, err := c.http.Do(ctx, httpclient.Request{
		Method:  method,
		URL:     target,
		Headers: headers,
		Query:   opts.Query,
		Body:    opts.Body,
	})
	if err != nil {
		observe(method, route, outcomeTransportError, start)
		c.log.ErrorObj("api request failed", "api_error", map[string]any{
			"method":     method,
			"url":        target,
			"request_id": headers[headerRequestID],
			"error":      err.Error(),
		})
		return &TransportError{Method: method, URL: target, Cause: err}
	}

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		observe(method, route, outcomeHTTPError, start)
		return newHTTPStatusError(status, resp.Body())
	}

	if err := decodeBody(resp.Body(), out); err != nil {
		observe(method, route, outcomeDecodeError, start)
		return err
	}
	observe(method, route, outcomeOK, start)
	return nil
}

// mergeHeaders overlays caller headers on the JSON default and stamps a request id.
func mergeHeaders(in map[string]string) map[string]string {
	headers := map[string]string{headerContentType: contentTypeJSON}
	for k, v := range in {
		key := http.CanonicalHeaderKey(strings.TrimSpace(k))
		if key == "" {
			continue
		}
		headers[key] = v
	}
	if headers[headerRequestID] == "" {
		headers[headerRequestID] = uuid.NewString()
	}
	return headers
}

func decodeBody(body []byte, out any) error {
	if out == nil || len(body) == 0 {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], body...)
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// ErrEmptyID is returned when an item operation is called without an id.
var ErrEmptyID = errors.New("id must not be empty")

// resourcePath joins segments under prefix and keeps the trailing slash.
func resourcePath(prefix string, segments ...string) (string, error) {
	var b strings.Builder
	b.WriteString(prefix)
	for _, s := range segments {
		s = strings.TrimSpace(s)
		if s == "" {
			return "", ErrEmptyID
		}
		b.WriteString(url.PathEscape(s))
		b.WriteByte('/')
	}
	return b.String(), nil
}
