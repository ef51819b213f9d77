package apierrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "message only",
			err:      API("bad request"),
			expected: "mailfinch: bad request",
		},
		{
			name:     "with cause",
			err:      Network(errors.New("connection refused")),
			expected: "mailfinch: " + MessageIO + ": connection refused",
		},
		{
			name:     "status",
			err:      FromStatus(404),
			expected: "mailfinch: " + MessageStatus404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		target   error
		expected bool
	}{
		{"invalid response matches ErrInvalidResponse", InvalidResponse(nil), ErrInvalidResponse, true},
		{"invalid response does not match ErrNetwork", InvalidResponse(nil), ErrNetwork, false},
		{"malformed URL matches ErrMalformedURL", MalformedURL(nil), ErrMalformedURL, true},
		{"network matches ErrNetwork", Network(nil), ErrNetwork, true},
		{"API matches ErrAPI", API("x"), ErrAPI, true},
		{"API does not match ErrHTTPStatus", API("x"), ErrHTTPStatus, false},
		{"404 matches ErrHTTPStatus", FromStatus(404), ErrHTTPStatus, true},
		{"404 matches ErrNotFound", FromStatus(404), ErrNotFound, true},
		{"404 does not match ErrUnauthorized", FromStatus(404), ErrUnauthorized, false},
		{"401 matches ErrUnauthorized", FromStatus(401), ErrUnauthorized, true},
		{"503 matches ErrServiceUnavailable", FromStatus(503), ErrServiceUnavailable, true},
		{"not saved matches ErrOperation", LetterNotSaved(), ErrOperation, true},
		{"not saved matches ErrLetterNotSaved", LetterNotSaved(), ErrLetterNotSaved, true},
		{"not saved does not match ErrLetterAlreadyPurchased", LetterNotSaved(), ErrLetterAlreadyPurchased, false},
		{"not saved does not match ErrNetwork", LetterNotSaved(), ErrNetwork, false},
		{"purchased matches ErrLetterAlreadyPurchased", LetterAlreadyPurchased(), ErrLetterAlreadyPurchased, true},
		{"purchased does not match ErrInvalidResponse", LetterAlreadyPurchased(), ErrInvalidResponse, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errors.Is(tt.err, tt.target)
			if got != tt.expected {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.expected)
			}
		})
	}
}

func TestError_WrappedIs(t *testing.T) {
	wrapped := fmt.Errorf("save letter: %w", FromStatus(422))
	if !errors.Is(wrapped, ErrUnprocessable) {
		t.Error("wrapped 422 should match ErrUnprocessable")
	}

	var e *Error
	if !errors.As(wrapped, &e) {
		t.Fatal("errors.As failed")
	}
	if e.Kind != KindHTTPStatus || e.StatusCode != 422 {
		t.Errorf("Kind = %v, StatusCode = %d", e.Kind, e.StatusCode)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := InvalidResponse(cause)
	if !errors.Is(err, cause) {
		t.Error("InvalidResponse should unwrap to its cause")
	}
}

func TestFromStatus(t *testing.T) {
	catalogued := map[int]string{
		400: MessageStatus400,
		401: MessageStatus401,
		403: MessageStatus403,
		404: MessageStatus404,
		422: MessageStatus422,
		500: MessageStatus500,
		502: MessageStatus502,
		503: MessageStatus503,
	}
	for code, msg := range catalogued {
		err := FromStatus(code)
		if err == nil {
			t.Errorf("FromStatus(%d) = nil", code)
			continue
		}
		if err.Message != msg {
			t.Errorf("FromStatus(%d).Message = %q, want %q", code, err.Message, msg)
		}
	}

	for _, code := range []int{200, 201, 204, 302, 409, 429, 504} {
		if err := FromStatus(code); err != nil {
			t.Errorf("FromStatus(%d) = %v, want nil", code, err)
		}
	}
}

func TestKind_String(t *testing.T) {
	if KindNetwork.String() != "network" {
		t.Errorf("KindNetwork.String() = %q", KindNetwork.String())
	}
	if Kind(0).String() != "unknown" {
		t.Errorf("Kind(0).String() = %q", Kind(0).String())
	}
}
