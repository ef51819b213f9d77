package api

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Method is an HTTP verb understood by the MailFinch API.
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
	MethodPut  Method = "PUT"
)

// HasBody reports whether params travel in a JSON body rather than the query.
func (m Method) HasBody() bool {
	return m != MethodGet
}

type valueKind uint8

const (
	kindNull valueKind = iota
	kindString
	kindObject
)

// Value is a single request parameter: a string, null, or a nested object.
// The zero Value is null.
type Value struct {
	kind valueKind
	str  string
	obj  Params
}

// String returns a string Value.
func String(s string) Value {
	return Value{kind: kindString, str: s}
}

// OptionalString returns a string Value, or null when s is empty.
func OptionalString(s string) Value {
	if s == "" {
		return Null()
	}
	return String(s)
}

// Null returns a null Value.
func Null() Value {
	return Value{}
}

// Object returns a nested object Value.
func Object(p Params) Value {
	return Value{kind: kindObject, obj: p}
}

// IsNull reports whether v is null.
func (v Value) IsNull() bool {
	return v.kind == kindNull
}

// Str returns the string content and whether v is a string.
func (v Value) Str() (string, bool) {
	return v.str, v.kind == kindString
}

// Params returns the nested object and whether v is an object.
func (v Value) Params() (Params, bool) {
	return v.obj, v.kind == kindObject
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case kindString:
		return json.Marshal(v.str)
	case kindObject:
		return json.Marshal(v.obj)
	default:
		return []byte("null"), nil
	}
}

// Params is a set of named request parameters.
type Params map[string]Value

// Clone returns a shallow copy of p. Nested objects are shared.
func (p Params) Clone() Params {
	out := make(Params, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	return out
}

// MarshalJSON implements json.Marshaler. A nil Params encodes as {}.
func (p Params) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]Value(p))
}

// Encode serializes p for the given method. GET params become a query
// string including the leading "?" (empty when p is empty); all other
// methods produce a JSON object body.
func (p Params) Encode(m Method) ([]byte, error) {
	if m.HasBody() {
		body, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("encode params: %w", err)
		}
		return body, nil
	}

	values := url.Values{}
	p.flatten("", values)
	if len(values) == 0 {
		return nil, nil
	}
	return []byte("?" + values.Encode()), nil
}

// flatten writes p into values. Nested objects use bracketed keys,
// e.g. letter[pdf_remote_url].
func (p Params) flatten(prefix string, values url.Values) {
	for k, v := range p {
		name := k
		if prefix != "" {
			name = prefix + "[" + k + "]"
		}
		switch v.kind {
		case kindString:
			values.Set(name, v.str)
		case kindObject:
			v.obj.flatten(name, values)
		default:
			values.Set(name, "")
		}
	}
}
