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
)

const (
	defaultBaseURL = "https://graph.facebook.com"
	defaultVersion = "v3.1"
)

// Client is the HTTP client for the Graph API. It builds versioned URLs,
// serializes JSON bodies and performs exactly one round trip per call.
// It never retries and never turns a non-2xx status into an error; the
// remote service is authoritative and callers inspect the status themselves.
type Client struct {
	baseURL    string
	version    string
	httpClient *http.Client
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the Graph API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithVersion sets the Graph API version path segment, e.g. "v3.1".
func WithVersion(version string) Option {
	return func(c *Client) {
		c.version = version
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a new API client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		version: defaultVersion,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Version returns the configured Graph API version segment.
func (c *Client) Version() string {
	return c.version
}

// endpoint builds the full URL for a path under the versioned base,
// carrying the access token in the query string.
func (c *Client) endpoint(path, token string, query url.Values) string {
	if query == nil {
		query = url.Values{}
	}
	if token != "" {
		query.Set("access_token", token)
	}
	return fmt.Sprintf("%s/%s/%s?%s", c.baseURL, c.version, path, query.Encode())
}

// Do issues a single request with a JSON body and returns the raw response.
// Transport-level failures surface exactly as the underlying http.Client
// reports them.
func (c *Client) Do(ctx context.Context, method, path, token string, body any) (*Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, token, nil), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.roundTrip(req)
}

// Get issues a GET request with the given query parameters and returns the
// raw response.
func (c *Client) Get(ctx context.Context, path, token string, query url.Values) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, token, query), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return c.roundTrip(req)
}

func (c *Client) roundTrip(req *http.Request) (*Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// Response is the unmodified result of a Graph API round trip. The body is
// fully read so callers never have to manage the underlying connection.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// OK reports whether the response carries a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}
