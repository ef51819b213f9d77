package mailfinch

import (
	"encoding/json"

	"github.com/mailfinch/client-go/internal/api"
	"github.com/mailfinch/client-go/internal/apierrors"
)

// Address is a postal address for a letter's sender or recipient.
// Street2 and Country are optional.
type Address struct {
	Name    string `json:"name" toml:"name"`
	Street1 string `json:"street1" toml:"street1"`
	Street2 string `json:"street2,omitempty" toml:"street2"`
	City    string `json:"city" toml:"city"`
	State   string `json:"state" toml:"state"`
	Zip     string `json:"zip" toml:"zip"`
	Country string `json:"country,omitempty" toml:"country"`
}

// addressWire is the server representation. Every field may be absent or null.
type addressWire struct {
	Name    *string `json:"name"`
	Street1 *string `json:"street1"`
	Street2 *string `json:"street2"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Zip     *string `json:"zip"`
	Country *string `json:"country"`
}

// IsValid reports whether the name, first street line, city, state and
// zip are all filled in.
func (a *Address) IsValid() bool {
	return a.Name != "" &&
		a.Street1 != "" &&
		a.City != "" &&
		a.State != "" &&
		a.Zip != ""
}

// RequestParams returns all seven fields for a create or update request.
// Empty fields are sent as null.
func (a *Address) RequestParams() api.Params {
	return api.Params{
		"name":    api.OptionalString(a.Name),
		"street1": api.OptionalString(a.Street1),
		"street2": api.OptionalString(a.Street2),
		"city":    api.OptionalString(a.City),
		"state":   api.OptionalString(a.State),
		"zip":     api.OptionalString(a.Zip),
		"country": api.OptionalString(a.Country),
	}
}

// parseAddress decodes a server address object. Absent or null fields
// stay empty; a field of the wrong type is an error.
func parseAddress(raw json.RawMessage) (*Address, error) {
	var w addressWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, apierrors.InvalidResponse(err)
	}
	return &Address{
		Name:    deref(w.Name),
		Street1: deref(w.Street1),
		Street2: deref(w.Street2),
		City:    deref(w.City),
		State:   deref(w.State),
		Zip:     deref(w.Zip),
		Country: deref(w.Country),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
