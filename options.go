package mailfinch

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/mailfinch/client-go/internal/api"
)

// DefaultBaseURL is the production MailFinch endpoint.
const DefaultBaseURL = api.DefaultBaseURL

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     zerolog.Logger
	connection Connection
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL. A trailing "/" is added if missing.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP request timeout. Ignored when WithHTTPClient
// is also given.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithConnection replaces the HTTP connection entirely. The base URL,
// HTTP client and timeout options have no effect when it is set.
func WithConnection(conn Connection) Option {
	return func(c *clientConfig) {
		c.connection = conn
	}
}
