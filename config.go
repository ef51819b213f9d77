package mailfinch

import (
	"net/http"
	"strings"

	"github.com/mailfinch/client-go/internal/api"
)

// Method is an HTTP verb understood by the MailFinch API.
type Method = api.Method

// HTTP verbs.
const (
	MethodGet  = api.MethodGet
	MethodPost = api.MethodPost
	MethodPut  = api.MethodPut
)

// Params are request parameters; see the api package for the Value kinds.
type Params = api.Params

// Response is a parsed reply envelope.
type Response = api.Response

// Connection executes MailFinch API calls. Implementations add the API
// key, build the endpoint URL and parse the reply envelope.
type Connection = api.Connection

// Configuration holds the credentials and connection shared by a Client
// and every Letter it creates. It is read-only after construction.
type Configuration struct {
	apiKey  string
	baseURL string
	conn    Connection
}

// APIKey returns the API key.
func (c *Configuration) APIKey() string {
	return c.apiKey
}

// BaseURL returns the API base URL.
func (c *Configuration) BaseURL() string {
	return c.baseURL
}

// Connection returns the connection used for API calls.
func (c *Configuration) Connection() Connection {
	return c.conn
}

// newConfiguration builds the configuration and, unless one was injected,
// the HTTP connection.
func newConfiguration(apiKey string, cfg *clientConfig) (*Configuration, error) {
	baseURL := cfg.baseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	conf := &Configuration{
		apiKey:  apiKey,
		baseURL: baseURL,
		conn:    cfg.connection,
	}
	if conf.conn != nil {
		return conf, nil
	}

	httpClient := cfg.httpClient
	if httpClient == nil && cfg.timeout > 0 {
		httpClient = &http.Client{Timeout: cfg.timeout}
	}

	apiClient, err := api.New(apiKey,
		api.WithBaseURL(baseURL),
		api.WithLogger(cfg.logger),
		api.WithTransport(api.NewHTTPTransport(httpClient, cfg.logger)),
	)
	if err != nil {
		return nil, err //coverage:ignore
	}
	conf.conn = apiClient
	return conf, nil
}
