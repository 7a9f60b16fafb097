package fbbotw

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-hclog"

	"github.com/sadmanHsn/fbbotw/internal/api"
)

// Graph API endpoint paths, relative to the versioned base.
const (
	pathMessages         = "me/messages"
	pathMessengerProfile = "me/messenger_profile"
	pathThreadSettings   = "me/thread_settings"
	pathAttachments      = "me/message_attachments"
)

// Response is the unmodified result of a Graph API call.
type Response = api.Response

// Client is the Messenger Platform client. It is stateless per call: every
// method resolves the access token fresh, builds one payload and performs
// one HTTP round trip. Concurrent use from multiple goroutines is safe.
type Client struct {
	api     *api.Client
	sources []TokenSource
	logger  hclog.Logger
}

// New creates a new Messenger Platform client.
//
// Token resolution order on every call: explicit token (WithAccessToken),
// then the PAGE_ACCESS_TOKEN environment variable, then any fallback
// sources added with WithTokenSource.
func New(opts ...Option) *Client {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var apiOpts []api.Option
	if cfg.baseURL != "" {
		apiOpts = append(apiOpts, api.WithBaseURL(cfg.baseURL))
	}
	if cfg.version != "" {
		apiOpts = append(apiOpts, api.WithVersion(cfg.version))
	}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}

	var sources []TokenSource
	if cfg.token != "" {
		sources = append(sources, StaticTokenSource(cfg.token))
	}
	sources = append(sources, &EnvTokenSource{})
	sources = append(sources, cfg.fallbacks...)

	logger := cfg.logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Client{
		api:     api.New(apiOpts...),
		sources: sources,
		logger:  logger,
	}
}

// Version returns the Graph API version segment in use, e.g. "v3.1".
func (c *Client) Version() string {
	return c.api.Version()
}

// dispatch resolves the token and performs a single JSON request. The
// token never reaches the log line.
func (c *Client) dispatch(ctx context.Context, method, path string, body any) (*Response, error) {
	token, err := resolveToken(c.sources)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("dispatching graph api request", "method", method, "path", path)
	return c.api.Do(ctx, method, path, token, body)
}

func (c *Client) post(ctx context.Context, path string, body any) (*Response, error) {
	return c.dispatch(ctx, http.MethodPost, path, body)
}

func (c *Client) delete(ctx context.Context, path string, body any) (*Response, error) {
	return c.dispatch(ctx, http.MethodDelete, path, body)
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*Response, error) {
	token, err := resolveToken(c.sources)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("dispatching graph api request", "method", http.MethodGet, "path", path)
	return c.api.Get(ctx, path, token, query)
}
