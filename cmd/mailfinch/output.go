package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	mailfinch "github.com/mailfinch/client-go"
	"github.com/mailfinch/client-go/internal/cliconfig"
	"github.com/mailfinch/client-go/internal/envelope"
)

// letterView is the --json shape of a letter.
type letterView struct {
	ID          int                `json:"id"`
	Status      string             `json:"status"`
	DocumentURL string             `json:"document_url,omitempty"`
	MailingDate string             `json:"mailing_date,omitempty"`
	SentAt      *time.Time         `json:"sent_at,omitempty"`
	PurchasedAt *time.Time         `json:"purchased_at,omitempty"`
	Sender      *mailfinch.Address `json:"sender,omitempty"`
	Recipient   *mailfinch.Address `json:"recipient,omitempty"`
}

func newLetterView(l *mailfinch.Letter) letterView {
	v := letterView{
		ID:          l.ID(),
		Status:      l.Status(),
		DocumentURL: l.DocumentURL,
		Sender:      l.Sender,
		Recipient:   l.Recipient,
	}
	if !l.MailingDate.IsZero() {
		v.MailingDate = l.MailingDate.Format(cliconfig.DateLayout)
	}
	if l.IsSent() {
		t := l.SentAt()
		v.SentAt = &t
	}
	if l.IsPurchased() {
		t := l.PurchasedAt()
		v.PurchasedAt = &t
	}
	return v
}

func (a *app) printLetters(letters []*mailfinch.Letter) error {
	if a.cfg.JSON {
		views := make([]letterView, 0, len(letters))
		for _, l := range letters {
			views = append(views, newLetterView(l))
		}
		return a.writeJSON(views)
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tMAILING DATE\tRECIPIENT")
	for _, l := range letters {
		v := newLetterView(l)
		recipient := "-"
		if l.Recipient != nil && l.Recipient.Name != "" {
			recipient = l.Recipient.Name
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", v.ID, orDash(v.Status), orDash(v.MailingDate), recipient)
	}
	return tw.Flush()
}

func (a *app) printLetter(l *mailfinch.Letter) error {
	v := newLetterView(l)
	if a.cfg.JSON {
		return a.writeJSON(v)
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", v.ID)
	fmt.Fprintf(tw, "Status:\t%s\n", orDash(v.Status))
	fmt.Fprintf(tw, "Document:\t%s\n", orDash(v.DocumentURL))
	fmt.Fprintf(tw, "Mailing date:\t%s\n", orDash(v.MailingDate))
	fmt.Fprintf(tw, "Purchased:\t%s\n", formatTime(v.PurchasedAt))
	fmt.Fprintf(tw, "Sent:\t%s\n", formatTime(v.SentAt))
	writeAddress(tw, "Sender:", l.Sender)
	writeAddress(tw, "Recipient:", l.Recipient)
	return tw.Flush()
}

func writeAddress(tw *tabwriter.Writer, label string, addr *mailfinch.Address) {
	lines := envelope.AddressLines(addr)
	if len(lines) == 0 {
		fmt.Fprintf(tw, "%s\t-\n", label)
		return
	}
	for i, line := range lines {
		if i > 0 {
			label = ""
		}
		fmt.Fprintf(tw, "%s\t%s\n", label, line)
	}
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}
