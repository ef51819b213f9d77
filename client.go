package mailfinch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mailfinch/client-go/internal/api"
	"github.com/mailfinch/client-go/internal/apierrors"
)

// Client is the entry point for working with MailFinch letters.
//
// A Client is read-only after New and may be shared between goroutines.
// The letters it returns are not.
type Client struct {
	config *Configuration
	logger zerolog.Logger
}

// New creates a new MailFinch client with the given API key. No request
// is made; the first network call happens on the first operation.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	conf, err := newConfiguration(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{config: conf, logger: cfg.logger}, nil
}

// Config returns the configuration shared with every letter from this client.
func (c *Client) Config() *Configuration {
	return c.config
}

// NewLetter returns an unsaved letter bound to this client.
func (c *Client) NewLetter() *Letter {
	return &Letter{config: c.config}
}

// GetAllLetters returns every letter on the account.
func (c *Client) GetAllLetters(ctx context.Context) ([]*Letter, error) {
	resp, err := c.config.Connection().Execute(ctx, api.LettersPath, api.MethodGet, nil)
	if err != nil {
		return nil, err
	}

	items, err := resp.Array()
	if err != nil {
		return nil, err
	}

	letters := make([]*Letter, 0, len(items))
	for i, item := range items {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(item, &obj); err != nil {
			return nil, fmt.Errorf("letter %d: %w", i, apierrors.InvalidResponse(err))
		}
		raw, err := letterMember(obj)
		if err != nil {
			return nil, fmt.Errorf("letter %d: %w", i, err)
		}
		letter, err := parseLetter(c.config, raw)
		if err != nil {
			return nil, fmt.Errorf("letter %d: %w", i, err)
		}
		letters = append(letters, letter)
	}

	c.logger.Debug().Int("count", len(letters)).Msg("fetched letters")
	return letters, nil
}

// GetLetter returns the letter with the given id.
func (c *Client) GetLetter(ctx context.Context, id int) (*Letter, error) {
	resp, err := c.config.Connection().Execute(ctx, api.LetterPath(id), api.MethodGet, nil)
	if err != nil {
		return nil, err
	}
	raw, err := letterPayload(resp)
	if err != nil {
		return nil, err
	}
	return parseLetter(c.config, raw)
}
