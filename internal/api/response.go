package api

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/mailfinch/client-go/internal/apierrors"
)

var errMissingEnvelope = errors.New(`missing "response" object`)

// Response is the envelope wrapping every MailFinch reply.
type Response struct {
	code    int
	message string
	payload json.RawMessage
}

type envelope struct {
	Response *struct {
		Code    json.RawMessage `json:"code"`
		Message json.RawMessage `json:"message"`
		Object  json.RawMessage `json:"object"`
		Errors  json.RawMessage `json:"errors"`
	} `json:"response"`
}

// ParseResponse parses a raw response body. If the envelope carries a
// non-null errors value, an API error with that text is returned before
// any other field is interpreted.
func ParseResponse(body []byte) (*Response, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, apierrors.InvalidResponse(err)
	}
	if env.Response == nil {
		return nil, apierrors.InvalidResponse(errMissingEnvelope)
	}
	inner := env.Response

	if !isNull(inner.Errors) {
		var text string
		if err := json.Unmarshal(inner.Errors, &text); err != nil {
			text = string(inner.Errors)
		}
		return nil, apierrors.API(text)
	}

	r := &Response{}
	if !isNull(inner.Code) {
		if err := json.Unmarshal(inner.Code, &r.code); err != nil {
			return nil, apierrors.InvalidResponse(err)
		}
	}
	if !isNull(inner.Message) {
		if err := json.Unmarshal(inner.Message, &r.message); err != nil {
			return nil, apierrors.InvalidResponse(err)
		}
	}
	if !isNull(inner.Object) {
		payload, err := unquotePayload(inner.Object)
		if err != nil {
			return nil, apierrors.InvalidResponse(err)
		}
		r.payload = payload
	}
	return r, nil
}

// unquotePayload returns the nested JSON text held by the object field.
// The server sends it as a string; an inline object or array is accepted too.
func unquotePayload(raw json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] != '"' {
		return trimmed, nil
	}
	var text string
	if err := json.Unmarshal(trimmed, &text); err != nil {
		return nil, err
	}
	return json.RawMessage(text), nil
}

// Code returns the status code reported inside the envelope.
func (r *Response) Code() int {
	return r.code
}

// Message returns the message reported inside the envelope.
func (r *Response) Message() string {
	return r.message
}

// Raw returns the nested payload text, unparsed.
func (r *Response) Raw() json.RawMessage {
	return r.payload
}

// Object parses the payload as a JSON object.
func (r *Response) Object() (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(r.payload, &obj); err != nil {
		return nil, apierrors.InvalidResponse(err)
	}
	if obj == nil {
		return nil, apierrors.InvalidResponse(errors.New("payload is not an object"))
	}
	return obj, nil
}

// Array parses the payload as a JSON array.
func (r *Response) Array() ([]json.RawMessage, error) {
	var arr []json.RawMessage
	if err := json.Unmarshal(r.payload, &arr); err != nil {
		return nil, apierrors.InvalidResponse(err)
	}
	if arr == nil {
		return nil, apierrors.InvalidResponse(errors.New("payload is not an array"))
	}
	return arr, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
