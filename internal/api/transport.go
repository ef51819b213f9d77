package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mailfinch/client-go/internal/apierrors"
)

// DefaultTimeout is the request timeout used when no http.Client is supplied.
const DefaultTimeout = 30 * time.Second

// Transport performs a single HTTP exchange and returns the raw body.
type Transport interface {
	RoundTrip(ctx context.Context, rawURL string, method Method, params Params) ([]byte, error)
}

// HTTPTransport is the net/http implementation of Transport.
type HTTPTransport struct {
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewHTTPTransport creates a transport. A nil httpClient gets one with
// DefaultTimeout.
func NewHTTPTransport(httpClient *http.Client, logger zerolog.Logger) *HTTPTransport {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPTransport{httpClient: httpClient, logger: logger}
}

// RoundTrip sends one request. GET params are appended to the URL as a
// query string; other methods send them as a JSON body. Catalogued error
// statuses fail with their canned message; any other status returns the
// body as-is.
func (t *HTTPTransport) RoundTrip(ctx context.Context, rawURL string, method Method, params Params) ([]byte, error) {
	encoded, err := params.Encode(method)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if method.HasBody() {
		body = bytes.NewReader(encoded)
	} else {
		rawURL += string(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, string(method), rawURL, body)
	if err != nil {
		return nil, apierrors.MalformedURL(err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.logger.Warn().Err(err).
			Str("method", string(method)).
			Str("path", req.URL.Path).
			Str("request_id", requestID).
			Msg("request failed")
		return nil, apierrors.Network(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.Network(err)
	}

	t.logger.Debug().
		Str("method", string(method)).
		Str("path", req.URL.Path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	if statusErr := apierrors.FromStatus(resp.StatusCode); statusErr != nil {
		return nil, statusErr
	}
	return data, nil
}
