package mailfinch

import (
	"errors"

	"github.com/mailfinch/client-go/internal/apierrors"
)

// Error is the error type returned by every client operation.
// Use errors.As to inspect its Kind and StatusCode.
type Error = apierrors.Error

// ErrorKind classifies an Error.
type ErrorKind = apierrors.Kind

// Error kinds.
const (
	KindInvalidResponse = apierrors.KindInvalidResponse
	KindMalformedURL    = apierrors.KindMalformedURL
	KindNetwork         = apierrors.KindNetwork
	KindHTTPStatus      = apierrors.KindHTTPStatus
	KindAPI             = apierrors.KindAPI
	KindOperation       = apierrors.KindOperation
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrInvalidResponse matches malformed or unexpected server JSON.
	ErrInvalidResponse = apierrors.ErrInvalidResponse

	// ErrMalformedURL matches a request URL that could not be built.
	ErrMalformedURL = apierrors.ErrMalformedURL

	// ErrNetwork matches transport-level failures.
	ErrNetwork = apierrors.ErrNetwork

	// ErrHTTPStatus matches every catalogued HTTP error status.
	ErrHTTPStatus = apierrors.ErrHTTPStatus

	// ErrAPI matches errors reported inside the response envelope.
	ErrAPI = apierrors.ErrAPI

	// ErrOperation matches local precondition failures.
	ErrOperation = apierrors.ErrOperation

	// ErrBadRequest is returned for HTTP 400.
	ErrBadRequest = apierrors.ErrBadRequest

	// ErrUnauthorized is returned for HTTP 401.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrForbidden is returned for HTTP 403.
	ErrForbidden = apierrors.ErrForbidden

	// ErrNotFound is returned for HTTP 404.
	ErrNotFound = apierrors.ErrNotFound

	// ErrUnprocessable is returned for HTTP 422.
	ErrUnprocessable = apierrors.ErrUnprocessable

	// ErrServerError is returned for HTTP 500.
	ErrServerError = apierrors.ErrServerError

	// ErrBadGateway is returned for HTTP 502.
	ErrBadGateway = apierrors.ErrBadGateway

	// ErrServiceUnavailable is returned for HTTP 503.
	ErrServiceUnavailable = apierrors.ErrServiceUnavailable

	// ErrLetterNotSaved is returned by Purchase on a letter with no id.
	ErrLetterNotSaved = apierrors.ErrLetterNotSaved

	// ErrLetterAlreadyPurchased is returned by Purchase on a purchased letter.
	ErrLetterAlreadyPurchased = apierrors.ErrLetterAlreadyPurchased
)
