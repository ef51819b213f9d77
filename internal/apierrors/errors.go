// Package apierrors provides shared error types for the MailFinch client.
package apierrors

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	// KindInvalidResponse indicates malformed or unexpected JSON from the server.
	KindInvalidResponse Kind = iota + 1
	// KindMalformedURL indicates the request URL could not be built.
	KindMalformedURL
	// KindNetwork indicates a transport-level failure.
	KindNetwork
	// KindHTTPStatus indicates one of the catalogued HTTP error statuses.
	KindHTTPStatus
	// KindAPI indicates the response envelope carried an errors value.
	KindAPI
	// KindOperation indicates a local precondition was not met.
	KindOperation
)

func (k Kind) String() string {
	switch k {
	case KindInvalidResponse:
		return "invalid response"
	case KindMalformedURL:
		return "malformed URL"
	case KindNetwork:
		return "network"
	case KindHTTPStatus:
		return "HTTP status"
	case KindAPI:
		return "API"
	case KindOperation:
		return "operation"
	default:
		return "unknown"
	}
}

// Canned messages.
const (
	MessageLetterAlreadyPurchased = "This letter has already been purchased."
	MessageLetterNotSaved         = "A letter must be saved by calling Save before it can be purchased."
	MessageInvalidJSON            = "Unknown or invalid JSON code has been used."
	MessageMalformedURL           = "An attempt was made to connect to a malformed URL."
	MessageIO                     = "An I/O error occurred when communicating with the MailFinch server."
	MessageStatus400              = "An HTTP error occurred: 400, a bad request was made."
	MessageStatus401              = "An HTTP error occurred: 401, an unauthorised request was made."
	MessageStatus403              = "An HTTP error occurred: 403, a forbidden request was made."
	MessageStatus404              = "An HTTP error occurred: 404, the requested resource could not be found."
	MessageStatus422              = "An HTTP error occurred: 422, a server precondition has not been met."
	MessageStatus500              = "An HTTP error occurred: 500, an internal server error occurred."
	MessageStatus502              = "An HTTP error occurred: 502, bad gateway."
	MessageStatus503              = "An HTTP error occurred: 503, the service is currently unavailable."
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidResponse matches every KindInvalidResponse error.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrMalformedURL matches every KindMalformedURL error.
	ErrMalformedURL = errors.New("malformed URL")

	// ErrNetwork matches every KindNetwork error.
	ErrNetwork = errors.New("network error")

	// ErrHTTPStatus matches every KindHTTPStatus error.
	ErrHTTPStatus = errors.New("HTTP status error")

	// ErrAPI matches every KindAPI error.
	ErrAPI = errors.New("API error")

	// ErrOperation matches every KindOperation error.
	ErrOperation = errors.New("operation not permitted")

	// ErrBadRequest is returned for HTTP 400.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized is returned for HTTP 401.
	ErrUnauthorized = errors.New("unauthorised")

	// ErrForbidden is returned for HTTP 403.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned for HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrUnprocessable is returned for HTTP 422.
	ErrUnprocessable = errors.New("server precondition not met")

	// ErrServerError is returned for HTTP 500.
	ErrServerError = errors.New("internal server error")

	// ErrBadGateway is returned for HTTP 502.
	ErrBadGateway = errors.New("bad gateway")

	// ErrServiceUnavailable is returned for HTTP 503.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrLetterNotSaved is returned when purchasing a letter that has no id yet.
	ErrLetterNotSaved = errors.New("letter not saved")

	// ErrLetterAlreadyPurchased is returned when purchasing a letter twice.
	ErrLetterAlreadyPurchased = errors.New("letter already purchased")
)

// statusCatalog maps the HTTP statuses treated as failures to their
// message and sentinel. Statuses not listed here are passed through.
var statusCatalog = map[int]struct {
	message  string
	sentinel error
}{
	400: {MessageStatus400, ErrBadRequest},
	401: {MessageStatus401, ErrUnauthorized},
	403: {MessageStatus403, ErrForbidden},
	404: {MessageStatus404, ErrNotFound},
	422: {MessageStatus422, ErrUnprocessable},
	500: {MessageStatus500, ErrServerError},
	502: {MessageStatus502, ErrBadGateway},
	503: {MessageStatus503, ErrServiceUnavailable},
}

// Error is the single error type returned by the MailFinch client.
type Error struct {
	Kind       Kind
	StatusCode int // set for KindHTTPStatus
	Message    string
	Err        error

	// reason is the specific sentinel this error also matches.
	reason error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mailfinch: %s: %v", e.Message, e.Err)
	}
	return "mailfinch: " + e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *Error) Is(target error) bool {
	if e.reason != nil && target == e.reason {
		return true
	}
	switch e.Kind {
	case KindInvalidResponse:
		return target == ErrInvalidResponse
	case KindMalformedURL:
		return target == ErrMalformedURL
	case KindNetwork:
		return target == ErrNetwork
	case KindHTTPStatus:
		return target == ErrHTTPStatus
	case KindAPI:
		return target == ErrAPI
	case KindOperation:
		return target == ErrOperation
	}
	return false
}

// InvalidResponse wraps a JSON decoding failure.
func InvalidResponse(err error) *Error {
	return &Error{Kind: KindInvalidResponse, Message: MessageInvalidJSON, Err: err}
}

// MalformedURL wraps a URL parse failure.
func MalformedURL(err error) *Error {
	return &Error{Kind: KindMalformedURL, Message: MessageMalformedURL, Err: err}
}

// Network wraps a transport failure.
func Network(err error) *Error {
	return &Error{Kind: KindNetwork, Message: MessageIO, Err: err}
}

// API returns the error for an envelope whose errors field was set.
// The message is the server's text verbatim.
func API(message string) *Error {
	return &Error{Kind: KindAPI, Message: message}
}

// LetterNotSaved returns the precondition failure for purchasing an unsaved letter.
func LetterNotSaved() *Error {
	return &Error{Kind: KindOperation, Message: MessageLetterNotSaved, reason: ErrLetterNotSaved}
}

// LetterAlreadyPurchased returns the precondition failure for purchasing a letter twice.
func LetterAlreadyPurchased() *Error {
	return &Error{Kind: KindOperation, Message: MessageLetterAlreadyPurchased, reason: ErrLetterAlreadyPurchased}
}

// FromStatus returns the catalogued error for an HTTP status code, or nil
// if the code is not one this client treats as a failure.
func FromStatus(code int) *Error {
	entry, ok := statusCatalog[code]
	if !ok {
		return nil
	}
	return &Error{Kind: KindHTTPStatus, StatusCode: code, Message: entry.message, reason: entry.sentinel}
}
