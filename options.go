package fbbotw

import (
	"net/http"

	"github.com/hashicorp/go-hclog"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	version    string
	httpClient *http.Client
	token      string
	fallbacks  []TokenSource
	logger     hclog.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the Graph API base URL. The default is the production
// Graph API host; point it at a test server to capture outbound requests.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithVersion sets the Graph API version path segment. Default: "v3.1".
func WithVersion(version string) Option {
	return func(c *clientConfig) {
		c.version = version
	}
}

// WithHTTPClient sets a custom HTTP client. Timeouts and cancellation are
// entirely the transport's business; the SDK imposes none of its own.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithAccessToken sets an explicit page access token. It takes precedence
// over the PAGE_ACCESS_TOKEN environment lookup.
func WithAccessToken(token string) Option {
	return func(c *clientConfig) {
		c.token = token
	}
}

// WithTokenSource appends a fallback token source, consulted when neither
// an explicit token nor the environment yields one. Use it to plug in a
// host-framework settings object. Fallbacks run in the order added.
func WithTokenSource(source TokenSource) Option {
	return func(c *clientConfig) {
		c.fallbacks = append(c.fallbacks, source)
	}
}

// WithLogger sets the logger used for request tracing. Dispatches are
// logged at Debug level; token values are never logged. Default: no-op.
func WithLogger(logger hclog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// sendConfig holds per-call configuration for Send API operations.
type sendConfig struct {
	messagingType   MessagingType
	tag             string
	sharable        bool
	aspectRatio     ImageAspectRatio
	reusable        bool
	topElementStyle string
}

// SendOption configures a single Send API call.
type SendOption func(*sendConfig)

// WithMessagingType sets the messaging_type field. Default: MessagingTypeResponse.
func WithMessagingType(mt MessagingType) SendOption {
	return func(c *sendConfig) {
		c.messagingType = mt
	}
}

// WithTag sets the message tag. Supplying a tag always includes the tag
// field in the payload; see the supported tags in the platform docs.
func WithTag(tag string) SendOption {
	return func(c *sendConfig) {
		c.tag = tag
	}
}

// WithSharable toggles the native share button on template messages.
// Sharing is on by default; only disabling it is sent on the wire.
func WithSharable(sharable bool) SendOption {
	return func(c *sendConfig) {
		c.sharable = sharable
	}
}

// WithImageAspectRatio sets the aspect ratio used to render generic
// template images. Default: AspectRatioHorizontal, which is never sent.
func WithImageAspectRatio(ratio ImageAspectRatio) SendOption {
	return func(c *sendConfig) {
		c.aspectRatio = ratio
	}
}

// WithReusable marks an attachment send as reusable; the response then
// carries an attachment_id for SendSavedAttachment.
func WithReusable() SendOption {
	return func(c *sendConfig) {
		c.reusable = true
	}
}

// WithTopElementStyle sets how a list template renders its first element,
// "large" (default) or "compact".
func WithTopElementStyle(style string) SendOption {
	return func(c *sendConfig) {
		c.topElementStyle = style
	}
}

// newSendConfig applies options over the per-call defaults.
func newSendConfig(opts []SendOption) *sendConfig {
	cfg := &sendConfig{
		messagingType:   MessagingTypeResponse,
		sharable:        true,
		aspectRatio:     AspectRatioHorizontal,
		topElementStyle: "large",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
