package cliconfig

import (
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	mailfinch "github.com/mailfinch/client-go"
)

// DateLayout is the mailing date format used in letter files and flags.
const DateLayout = "2006-01-02"

// LetterFile is a letter definition read from TOML:
//
//	document_url = "https://example.com/invoice.pdf"
//	mailing_date = "2024-05-01"
//
//	[sender]
//	name = "Ann Smith"
//	...
//
//	[recipient]
//	...
type LetterFile struct {
	DocumentURL string             `toml:"document_url"`
	MailingDate string             `toml:"mailing_date"`
	Sender      *mailfinch.Address `toml:"sender"`
	Recipient   *mailfinch.Address `toml:"recipient"`
}

// LoadLetterFile reads and parses a letter definition.
func LoadLetterFile(path string) (LetterFile, error) {
	var lf LetterFile
	b, err := os.ReadFile(path)
	if err != nil {
		return lf, err
	}
	if err := toml.Unmarshal(b, &lf); err != nil {
		return lf, fmt.Errorf("parse %s: %w", path, err)
	}
	return lf, nil
}

// Apply copies the fields set in lf onto l. Unset fields leave l unchanged.
func (lf LetterFile) Apply(l *mailfinch.Letter) error {
	if lf.DocumentURL != "" {
		l.DocumentURL = lf.DocumentURL
	}
	if lf.MailingDate != "" {
		d, err := time.Parse(DateLayout, lf.MailingDate)
		if err != nil {
			return fmt.Errorf("mailing_date: %w", err)
		}
		l.MailingDate = d
	}
	if lf.Sender != nil {
		l.Sender = lf.Sender
	}
	if lf.Recipient != nil {
		l.Recipient = lf.Recipient
	}
	return nil
}
