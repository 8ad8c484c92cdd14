// Package http implements the request dispatcher shared by every resource
// client: it joins routes onto the configured origin, attaches JSON headers
// and basic-auth credentials, performs one synchronous HTTP call, classifies
// the response, and checks that success bodies decode as JSON.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/dome9-io/dome9-client/internal/constants"
	"github.com/dome9-io/dome9-client/pkg/dome9"
)

// ErrUnsupportedMethod is returned for a verb outside the closed set.
var ErrUnsupportedMethod = errors.New("unsupported HTTP method")

// Logger interface for HTTP client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	// Status is the HTTP reason phrase.
	Status  string
	Headers http.Header
	Body    []byte
}

// Client dispatches requests against one API origin with fixed basic-auth
// credentials. It holds no mutable state and is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
	logger     Logger
	debug      bool
	userAgent  string
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPTimeout bounds each HTTP exchange.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a dispatcher for the given origin and credentials. The
// caller is responsible for validating all three values first.
func NewClient(baseURL, apiKey, apiSecret string, opts ...Option) *Client {
	// One attempt per invocation; retryablehttp only contributes its
	// transport hygiene (response draining, connection reuse).
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		httpClient: retryClient.StandardClient(),
		userAgent:  "dome9-client-go",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do performs a single synchronous request. On a non-success status or an
// undecodable success body it returns the response together with a
// *dome9.APIError describing the failure.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	switch req.Method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, req.Method)
	}

	target, err := c.resolveURL(req.Path, req.Query)
	if err != nil {
		return nil, fmt.Errorf("resolving %q against %q: %w", req.Path, c.baseURL, err)
	}

	httpReq, err := c.buildRequest(ctx, req, target)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    target,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &dome9.APIError{Message: fmt.Sprintf("%s %v", target, err)}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &dome9.APIError{Message: fmt.Sprintf("%s %v", target, err)}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Status:     reasonPhrase(httpResp),
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"size":   len(body),
		})
	}

	if httpResp.StatusCode < constants.SuccessStatusMin || httpResp.StatusCode > constants.SuccessStatusMax {
		return resp, &dome9.APIError{
			Message: resp.Status,
			Code:    httpResp.StatusCode,
			Content: body,
		}
	}

	if len(body) > 0 {
		var decoded interface{}

		err = json.Unmarshal(body, &decoded)
		if err != nil {
			return resp, &dome9.APIError{
				Message: err.Error(),
				Code:    httpResp.StatusCode,
				Content: body,
			}
		}
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// resolveURL joins a relative route onto the origin using RFC 3986 reference
// resolution, so an absolute route replaces the origin's path.
func (c *Client) resolveURL(path string, query url.Values) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base URL: %w", err)
	}

	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parsing route: %w", err)
	}

	resolved := base.ResolveReference(ref)
	if len(query) > 0 {
		resolved.RawQuery = query.Encode()
	}

	return resolved.String(), nil
}

func (c *Client) buildRequest(ctx context.Context, req *Request, target string) (*http.Request, error) {
	var bodyReader io.Reader

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.SetBasicAuth(c.apiKey, c.apiSecret)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

// reasonPhrase extracts the reason phrase from a response status line,
// falling back to the standard text for the code.
func reasonPhrase(resp *http.Response) string {
	prefix := strconv.Itoa(resp.StatusCode) + " "
	if len(resp.Status) > len(prefix) && resp.Status[:len(prefix)] == prefix {
		return resp.Status[len(prefix):]
	}

	return http.StatusText(resp.StatusCode)
}
