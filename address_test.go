package mailfinch

import (
	"encoding/json"
	"errors"
	"testing"
)

func fullAddress() *Address {
	return &Address{
		Name:    "Ann Smith",
		Street1: "1 Main St",
		City:    "Springfield",
		State:   "IL",
		Zip:     "62701",
	}
}

func TestAddress_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Address)
		want   bool
	}{
		{"complete", func(*Address) {}, true},
		{"optional fields empty", func(a *Address) { a.Street2, a.Country = "", "" }, true},
		{"missing name", func(a *Address) { a.Name = "" }, false},
		{"missing street1", func(a *Address) { a.Street1 = "" }, false},
		{"missing city", func(a *Address) { a.City = "" }, false},
		{"missing state", func(a *Address) { a.State = "" }, false},
		{"missing zip", func(a *Address) { a.Zip = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := fullAddress()
			tt.mutate(a)
			if got := a.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddress_RequestParams(t *testing.T) {
	a := fullAddress()
	a.Country = "US"

	params := a.RequestParams()
	if len(params) != 7 {
		t.Fatalf("len(params) = %d, want 7", len(params))
	}
	if v, _ := params["city"].Str(); v != "Springfield" {
		t.Errorf("city = %q", v)
	}
	if v, _ := params["country"].Str(); v != "US" {
		t.Errorf("country = %q", v)
	}
	if !params["street2"].IsNull() {
		t.Error("empty street2 should be sent as null")
	}

	data, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v, ok := decoded["street2"]; !ok || v != nil {
		t.Errorf("street2 = %v, want explicit null", v)
	}
}

func TestParseAddress(t *testing.T) {
	raw := json.RawMessage(`{"name":"Bob","street1":"2 Oak","street2":null,"city":"Portland","state":"OR","zip":"97201"}`)

	a, err := parseAddress(raw)
	if err != nil {
		t.Fatalf("parseAddress() error = %v", err)
	}
	want := Address{Name: "Bob", Street1: "2 Oak", City: "Portland", State: "OR", Zip: "97201"}
	if *a != want {
		t.Errorf("got %+v, want %+v", *a, want)
	}
	if !a.IsValid() {
		t.Error("parsed address should be valid")
	}
}

func TestParseAddress_WrongType(t *testing.T) {
	_, err := parseAddress(json.RawMessage(`{"zip":62701}`))
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("err = %v, want ErrInvalidResponse", err)
	}
}
