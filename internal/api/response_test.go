package api

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/mailfinch/client-go/internal/apierrors"
)

func TestParseResponse_Object(t *testing.T) {
	body := []byte(`{"response":{"code":200,"message":"OK","object":"{\"letter\":{\"id\":5}}"}}`)

	resp, err := ParseResponse(body)
	if err != nil {
		t.Fatalf("ParseResponse() error = %v", err)
	}
	if resp.Code() != 200 {
		t.Errorf("Code() = %d, want 200", resp.Code())
	}
	if resp.Message() != "OK" {
		t.Errorf("Message() = %q, want OK", resp.Message())
	}

	obj, err := resp.Object()
	if err != nil {
		t.Fatalf("Object() error = %v", err)
	}
	var letter struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(obj["letter"], &letter); err != nil {
		t.Fatalf("unmarshal letter: %v", err)
	}
	if letter.ID != 5 {
		t.Errorf("letter.id = %d, want 5", letter.ID)
	}
}

func TestParseResponse_Array(t *testing.T) {
	body := []byte(`{"response":{"code":200,"message":"OK","object":"[{\"letter\":{\"id\":1}},{\"letter\":{\"id\":2}}]","errors":null}}`)

	resp, err := ParseResponse(body)
	if err != nil {
		t.Fatalf("ParseResponse() error = %v", err)
	}
	arr, err := resp.Array()
	if err != nil {
		t.Fatalf("Array() error = %v", err)
	}
	if len(arr) != 2 {
		t.Errorf("len(Array()) = %d, want 2", len(arr))
	}

	if _, err := resp.Object(); !errors.Is(err, apierrors.ErrInvalidResponse) {
		t.Errorf("Object() on array payload error = %v, want ErrInvalidResponse", err)
	}
}

func TestParseResponse_InlinePayload(t *testing.T) {
	body := []byte(`{"response":{"code":200,"message":"OK","object":{"letter":{"id":9}}}}`)

	resp, err := ParseResponse(body)
	if err != nil {
		t.Fatalf("ParseResponse() error = %v", err)
	}
	obj, err := resp.Object()
	if err != nil {
		t.Fatalf("Object() error = %v", err)
	}
	if _, ok := obj["letter"]; !ok {
		t.Error("inline object payload lost its letter key")
	}
}

func TestParseResponse_Errors(t *testing.T) {
	// code and message have the wrong types; they must never be read.
	body := []byte(`{"response":{"code":"oops","message":7,"object":"not json","errors":"bad request"}}`)

	_, err := ParseResponse(body)
	if !errors.Is(err, apierrors.ErrAPI) {
		t.Fatalf("error = %v, want ErrAPI", err)
	}
	var apiErr *apierrors.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.Message != "bad request" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "bad request")
	}
}

func TestParseResponse_NonStringErrors(t *testing.T) {
	body := []byte(`{"response":{"errors":{"zip":["can't be blank"]}}}`)

	_, err := ParseResponse(body)
	var apiErr *apierrors.Error
	if !errors.As(err, &apiErr) || apiErr.Kind != apierrors.KindAPI {
		t.Fatalf("error = %v, want API error", err)
	}
	if apiErr.Message != `{"zip":["can't be blank"]}` {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestParseResponse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not JSON", `<html>oops</html>`},
		{"empty", ``},
		{"missing response", `{"code":200}`},
		{"code wrong type", `{"response":{"code":"200"}}`},
		{"message wrong type", `{"response":{"message":1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResponse([]byte(tt.body))
			if !errors.Is(err, apierrors.ErrInvalidResponse) {
				t.Errorf("error = %v, want ErrInvalidResponse", err)
			}
		})
	}
}

func TestResponse_MalformedPayload(t *testing.T) {
	resp, err := ParseResponse([]byte(`{"response":{"code":200,"object":"{not json"}}`))
	if err != nil {
		t.Fatalf("ParseResponse() error = %v", err)
	}
	if _, err := resp.Object(); !errors.Is(err, apierrors.ErrInvalidResponse) {
		t.Errorf("Object() error = %v, want ErrInvalidResponse", err)
	}
	if _, err := resp.Array(); !errors.Is(err, apierrors.ErrInvalidResponse) {
		t.Errorf("Array() error = %v, want ErrInvalidResponse", err)
	}
}

func TestResponse_NullPayload(t *testing.T) {
	resp, err := ParseResponse([]byte(`{"response":{"code":200,"object":null}}`))
	if err != nil {
		t.Fatalf("ParseResponse() error = %v", err)
	}
	if _, err := resp.Object(); !errors.Is(err, apierrors.ErrInvalidResponse) {
		t.Errorf("Object() error = %v, want ErrInvalidResponse", err)
	}
}
