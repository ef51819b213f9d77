package mockserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mailfinch/client-go/internal/api"
)

var errAlreadyPurchased = errors.New("letter has already been purchased")

type envelopeBody struct {
	Code    int     `json:"code"`
	Message string  `json:"message"`
	Object  string  `json:"object"`
	Errors  *string `json:"errors"`
}

type envelope struct {
	Response envelopeBody `json:"response"`
}

// letterJSON is the wire form of a letter.
type letterJSON struct {
	ID          int            `json:"id"`
	Status      string         `json:"status_field"`
	DocumentURL *string        `json:"pdf_remote_url"`
	Sender      *AddressRecord `json:"sender"`
	Recipient   *AddressRecord `json:"recipient"`
	MailingDate *string        `json:"mailing_date"`
	SentAt      *string        `json:"sent_at"`
	PurchasedAt *string        `json:"purchased_at"`
}

type letterItem struct {
	Letter letterJSON `json:"letter"`
}

// letterRequest is the JSON body of a create or update call.
type letterRequest struct {
	APIKey string `json:"api_key"`
	ID     string `json:"id"`
	Letter *struct {
		DocumentURL *string        `json:"pdf_remote_url"`
		Sender      *AddressRecord `json:"sender_attributes"`
		Recipient   *AddressRecord `json:"recipient_attributes"`
	} `json:"letter"`
	MailingYear  string `json:"mailing_year"`
	MailingMonth string `json:"mailing_month"`
	MailingDay   string `json:"mailing_day"`
}

func toJSON(rec LetterRecord) letterJSON {
	out := letterJSON{
		ID:          rec.ID,
		Status:      rec.Status,
		Sender:      rec.Sender,
		Recipient:   rec.Recipient,
		MailingDate: formatOptional(rec.MailingDate),
		SentAt:      formatOptional(rec.SentAt),
		PurchasedAt: formatOptional(rec.PurchasedAt),
	}
	if rec.DocumentURL != "" {
		out.DocumentURL = &rec.DocumentURL
	}
	return out
}

func formatOptional(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := api.FormatTime(t)
	return &s
}

// writeObject wraps payload in the envelope. The payload travels as a
// JSON string inside "object", as the real service sends it.
func writeObject(c *gin.Context, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, envelope{Response: envelopeBody{
		Code:    http.StatusOK,
		Message: "OK",
		Object:  string(data),
	}})
}

// writeErrors reports a validation failure inside a 200 envelope.
func writeErrors(c *gin.Context, messages []string) {
	text := strings.Join(messages, ", ")
	c.JSON(http.StatusOK, envelope{Response: envelopeBody{
		Code:    http.StatusUnprocessableEntity,
		Message: "Unprocessable Entity",
		Errors:  &text,
	}})
}

// abortStatus answers with a bare HTTP error status.
func abortStatus(c *gin.Context, status int) {
	c.String(status, http.StatusText(status))
}

// letterID extracts the id from a ":id" segment such as "7.json".
// requireSuffix is false for routes where ".json" is a separate segment.
func letterID(c *gin.Context, requireSuffix bool) (int, bool) {
	raw := c.Param("id")
	if requireSuffix {
		var ok bool
		raw, ok = strings.CutSuffix(raw, ".json")
		if !ok {
			return 0, false
		}
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// GET /letters.json
func (s *Server) listLettersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.authorized(c.Query(api.APIKeyParam)) {
			abortStatus(c, http.StatusUnauthorized)
			return
		}
		records := s.Store.List()
		items := make([]letterItem, 0, len(records))
		for _, rec := range records {
			items = append(items, letterItem{Letter: toJSON(rec)})
		}
		writeObject(c, items)
	}
}

// GET /letters/:id.json
func (s *Server) getLetterHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.authorized(c.Query(api.APIKeyParam)) {
			abortStatus(c, http.StatusUnauthorized)
			return
		}
		id, ok := letterID(c, true)
		if !ok {
			abortStatus(c, http.StatusNotFound)
			return
		}
		rec, ok := s.Store.Get(id)
		if !ok {
			abortStatus(c, http.StatusNotFound)
			return
		}
		writeObject(c, letterItem{Letter: toJSON(rec)})
	}
}

// POST /letters.json
func (s *Server) createLetterHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req letterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortStatus(c, http.StatusBadRequest)
			return
		}
		if !s.authorized(req.APIKey) {
			abortStatus(c, http.StatusUnauthorized)
			return
		}

		rec := LetterRecord{Status: StatusDraft}
		if problems := applyRequest(&rec, &req); len(problems) > 0 {
			writeErrors(c, problems)
			return
		}
		if problems := validate(&rec); len(problems) > 0 {
			writeErrors(c, problems)
			return
		}

		rec = s.Store.Create(rec)
		s.logger.Debug().Int("id", rec.ID).Msg("letter created")
		writeObject(c, letterItem{Letter: toJSON(rec)})
	}
}

// PUT /letters/:id.json
func (s *Server) updateLetterHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req letterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortStatus(c, http.StatusBadRequest)
			return
		}
		if !s.authorized(req.APIKey) {
			abortStatus(c, http.StatusUnauthorized)
			return
		}
		id, ok := letterID(c, true)
		if !ok {
			abortStatus(c, http.StatusNotFound)
			return
		}

		var problems []string
		rec, found, err := s.Store.Update(id, func(rec *LetterRecord) error {
			if !rec.PurchasedAt.IsZero() {
				return errAlreadyPurchased
			}
			problems = applyRequest(rec, &req)
			if len(problems) == 0 {
				problems = validate(rec)
			}
			if len(problems) > 0 {
				return errors.New("validation failed")
			}
			return nil
		})
		switch {
		case !found:
			abortStatus(c, http.StatusNotFound)
		case errors.Is(err, errAlreadyPurchased):
			abortStatus(c, http.StatusUnprocessableEntity)
		case len(problems) > 0:
			writeErrors(c, problems)
		default:
			writeObject(c, letterItem{Letter: toJSON(rec)})
		}
	}
}

// GET /letters/:id/purchase.json
func (s *Server) purchaseLetterHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.authorized(c.Query(api.APIKeyParam)) {
			abortStatus(c, http.StatusUnauthorized)
			return
		}
		id, ok := letterID(c, false)
		if !ok {
			abortStatus(c, http.StatusNotFound)
			return
		}

		rec, found, err := s.Store.Update(id, func(rec *LetterRecord) error {
			if !rec.PurchasedAt.IsZero() {
				return errAlreadyPurchased
			}
			rec.PurchasedAt = s.now().UTC().Truncate(time.Second)
			rec.Status = StatusPurchased
			return nil
		})
		switch {
		case !found:
			abortStatus(c, http.StatusNotFound)
		case err != nil:
			abortStatus(c, http.StatusUnprocessableEntity)
		default:
			s.logger.Debug().Int("id", rec.ID).Msg("letter purchased")
			writeObject(c, letterItem{Letter: toJSON(rec)})
		}
	}
}

// applyRequest copies the fields present in req onto rec.
func applyRequest(rec *LetterRecord, req *letterRequest) []string {
	if req.Letter != nil {
		if req.Letter.DocumentURL != nil {
			rec.DocumentURL = *req.Letter.DocumentURL
		}
		if req.Letter.Sender != nil {
			rec.Sender = req.Letter.Sender
		}
		if req.Letter.Recipient != nil {
			rec.Recipient = req.Letter.Recipient
		}
	}

	if req.MailingYear == "" && req.MailingMonth == "" && req.MailingDay == "" {
		return nil
	}
	date, err := time.Parse("2006-01-02", fmt.Sprintf("%s-%s-%s", req.MailingYear, req.MailingMonth, req.MailingDay))
	if err != nil {
		return []string{"Mailing date is invalid"}
	}
	rec.MailingDate = date
	return nil
}

// validate returns one message per missing required value.
func validate(rec *LetterRecord) []string {
	var problems []string
	if rec.DocumentURL == "" {
		problems = append(problems, "Pdf remote url can't be blank")
	}
	problems = append(problems, validateAddress("Sender", rec.Sender)...)
	problems = append(problems, validateAddress("Recipient", rec.Recipient)...)
	return problems
}

func validateAddress(label string, a *AddressRecord) []string {
	if a == nil {
		return []string{label + " can't be blank"}
	}
	required := []struct {
		field string
		value *string
	}{
		{"name", a.Name},
		{"street1", a.Street1},
		{"city", a.City},
		{"state", a.State},
		{"zip", a.Zip},
	}
	var problems []string
	for _, r := range required {
		if r.value == nil || *r.value == "" {
			problems = append(problems, fmt.Sprintf("%s %s can't be blank", label, r.field))
		}
	}
	return problems
}
