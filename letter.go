package mailfinch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/mailfinch/client-go/internal/api"
	"github.com/mailfinch/client-go/internal/apierrors"
)

// Letter is a physical letter to be mailed through MailFinch.
//
// A new letter has no id. Save creates it on the server (or updates it once
// it has an id) and Purchase pays for delivery. A Letter is not safe for
// concurrent use.
type Letter struct {
	// DocumentURL is the publicly reachable PDF to print.
	DocumentURL string
	// MailingDate is the day the letter should be mailed. Only the date part is sent.
	MailingDate time.Time
	// Sender is the return address.
	Sender *Address
	// Recipient is the delivery address.
	Recipient *Address

	config      *Configuration
	id          int
	status      string
	sentAt      time.Time
	purchasedAt time.Time
}

// letterWire is the server representation of a letter.
type letterWire struct {
	ID          *int            `json:"id"`
	Status      *string         `json:"status_field"`
	DocumentURL *string         `json:"pdf_remote_url"`
	Sender      json.RawMessage `json:"sender"`
	Recipient   json.RawMessage `json:"recipient"`
	MailingDate *string         `json:"mailing_date"`
	SentAt      *string         `json:"sent_at"`
	PurchasedAt *string         `json:"purchased_at"`
}

// ID returns the server-assigned id, or 0 if the letter has not been saved.
func (l *Letter) ID() int {
	return l.id
}

// Status returns the status last reported by the server.
func (l *Letter) Status() string {
	return l.status
}

// SentAt returns when the letter was sent, or the zero time.
func (l *Letter) SentAt() time.Time {
	return l.sentAt
}

// PurchasedAt returns when delivery was purchased, or the zero time.
func (l *Letter) PurchasedAt() time.Time {
	return l.purchasedAt
}

// IsSaved reports whether the letter exists on the server.
func (l *Letter) IsSaved() bool {
	return l.id != 0
}

// IsSent reports whether the letter has been sent.
func (l *Letter) IsSent() bool {
	return !l.sentAt.IsZero()
}

// IsPurchased reports whether delivery has been purchased.
func (l *Letter) IsPurchased() bool {
	return !l.purchasedAt.IsZero()
}

// RequestParams returns the create/update parameters. Only fields that
// are set are included, so a partial letter makes a partial update.
func (l *Letter) RequestParams() api.Params {
	letter := api.Params{}
	if l.DocumentURL != "" {
		letter["pdf_remote_url"] = api.String(l.DocumentURL)
	}
	if l.Sender != nil {
		letter["sender_attributes"] = api.Object(l.Sender.RequestParams())
	}
	if l.Recipient != nil {
		letter["recipient_attributes"] = api.Object(l.Recipient.RequestParams())
	}

	params := api.Params{"letter": api.Object(letter)}
	if !l.MailingDate.IsZero() {
		year, month, day := api.DateParts(l.MailingDate)
		params["mailing_year"] = api.String(year)
		params["mailing_month"] = api.String(month)
		params["mailing_day"] = api.String(day)
	}
	if l.IsSaved() {
		params["id"] = api.String(strconv.Itoa(l.id))
	}
	return params
}

// Save creates the letter on the server, or updates it if it already has
// an id, then refreshes the id, status and timestamps from the reply.
func (l *Letter) Save(ctx context.Context) error {
	if l.IsSaved() {
		return l.sync(ctx, api.LetterPath(l.id), api.MethodPut, l.RequestParams())
	}
	return l.sync(ctx, api.LettersPath, api.MethodPost, l.RequestParams())
}

// Purchase pays for delivery of a saved letter. It fails with
// ErrLetterNotSaved or ErrLetterAlreadyPurchased without contacting the
// server when the letter is not in a purchasable state.
func (l *Letter) Purchase(ctx context.Context) error {
	if !l.IsSaved() {
		return apierrors.LetterNotSaved()
	}
	if l.IsPurchased() {
		return apierrors.LetterAlreadyPurchased()
	}
	return l.sync(ctx, api.PurchasePath(l.id), api.MethodGet, nil)
}

// sync performs one call and copies the server-owned fields from the
// letter object in the reply.
func (l *Letter) sync(ctx context.Context, path string, method Method, params Params) error {
	resp, err := l.config.Connection().Execute(ctx, path, method, params)
	if err != nil {
		return err
	}
	raw, err := letterPayload(resp)
	if err != nil {
		return err
	}
	fresh, err := parseLetter(l.config, raw)
	if err != nil {
		return err
	}
	if fresh.id == 0 {
		return apierrors.InvalidResponse(errors.New(`letter reply has no "id"`))
	}

	l.id = fresh.id
	l.status = fresh.status
	l.sentAt = fresh.sentAt
	l.purchasedAt = fresh.purchasedAt
	return nil
}

// letterPayload extracts the "letter" member of an object response.
func letterPayload(resp *Response) (json.RawMessage, error) {
	obj, err := resp.Object()
	if err != nil {
		return nil, err
	}
	return letterMember(obj)
}

func letterMember(obj map[string]json.RawMessage) (json.RawMessage, error) {
	raw, ok := obj["letter"]
	if !ok || string(raw) == "null" {
		return nil, apierrors.InvalidResponse(errors.New(`missing "letter" object`))
	}
	return raw, nil
}

// parseLetter decodes a server letter object. Absent or null fields keep
// their zero value. Unparseable timestamps also yield the zero time.
func parseLetter(config *Configuration, raw json.RawMessage) (*Letter, error) {
	var w letterWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, apierrors.InvalidResponse(err)
	}

	l := &Letter{config: config}
	if w.ID != nil {
		l.id = *w.ID
	}
	l.status = deref(w.Status)
	l.DocumentURL = deref(w.DocumentURL)

	if !isJSONNull(w.Sender) {
		sender, err := parseAddress(w.Sender)
		if err != nil {
			return nil, fmt.Errorf("sender: %w", err)
		}
		l.Sender = sender
	}
	if !isJSONNull(w.Recipient) {
		recipient, err := parseAddress(w.Recipient)
		if err != nil {
			return nil, fmt.Errorf("recipient: %w", err)
		}
		l.Recipient = recipient
	}

	if w.MailingDate != nil {
		l.MailingDate = api.ParseTime(*w.MailingDate)
	}
	if w.SentAt != nil {
		l.sentAt = api.ParseTime(*w.SentAt)
	}
	if w.PurchasedAt != nil {
		l.purchasedAt = api.ParseTime(*w.PurchasedAt)
	}
	return l, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
