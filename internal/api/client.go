package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/mailfinch/client-go/internal/apierrors"
)

// DefaultBaseURL is the production MailFinch endpoint.
const DefaultBaseURL = "https://www.mailfinch.com/"

// APIKeyParam is the parameter carrying the API key on every request.
const APIKeyParam = "api_key"

// Connection executes MailFinch API calls.
type Connection interface {
	Execute(ctx context.Context, path string, method Method, params Params) (*Response, error)
}

// Client is the base Connection: it authenticates, builds the URL and
// parses the envelope, leaving the exchange itself to a Transport.
type Client struct {
	baseURL   string
	apiKey    string
	transport Transport
	logger    zerolog.Logger
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL. It must end with "/".
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTransport sets the transport used for the HTTP exchange.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a new API client.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.transport == nil {
		c.transport = NewHTTPTransport(nil, c.logger)
	}

	return c, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL returns the full endpoint URL for path.
func (c *Client) URL(path string) string {
	return c.baseURL + path + ".json"
}

// Execute performs one API call. The API key is added to a copy of params,
// so the caller's map is left untouched. No retries are attempted.
func (c *Client) Execute(ctx context.Context, path string, method Method, params Params) (*Response, error) {
	rawURL := c.URL(path)
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, apierrors.MalformedURL(err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, apierrors.MalformedURL(fmt.Errorf("%q is not an absolute URL", rawURL))
	}

	withKey := params.Clone()
	withKey[APIKeyParam] = String(c.apiKey)

	body, err := c.transport.RoundTrip(ctx, rawURL, method, withKey)
	if err != nil {
		return nil, err
	}

	resp, err := ParseResponse(body)
	if err != nil {
		c.logger.Debug().Err(err).Str("path", path).Msg("response rejected")
		return nil, err
	}
	return resp, nil
}
