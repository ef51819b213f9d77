package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	mailfinch "github.com/mailfinch/client-go"
)

const letterTOML = `
document_url = "https://example.com/invoice.pdf"
mailing_date = "2024-05-01"

[sender]
name = "Ann Smith"
street1 = "1 Main St"
city = "Springfield"
state = "IL"
zip = "62701"

[recipient]
name = "Bob Jones"
street1 = "2 Oak Ave"
street2 = "Apt 4"
city = "Portland"
state = "OR"
zip = "97201"
country = "US"
`

func writeLetter(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "letter.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadLetterFile(t *testing.T) {
	lf, err := LoadLetterFile(writeLetter(t, letterTOML))
	if err != nil {
		t.Fatalf("LoadLetterFile() error = %v", err)
	}

	l := &mailfinch.Letter{}
	if err := lf.Apply(l); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if l.DocumentURL != "https://example.com/invoice.pdf" {
		t.Errorf("DocumentURL = %s", l.DocumentURL)
	}
	if !l.MailingDate.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("MailingDate = %v", l.MailingDate)
	}
	if l.Sender == nil || !l.Sender.IsValid() {
		t.Errorf("Sender = %+v", l.Sender)
	}
	if l.Recipient == nil || l.Recipient.Street2 != "Apt 4" || l.Recipient.Country != "US" {
		t.Errorf("Recipient = %+v", l.Recipient)
	}
}

func TestLetterFile_ApplyPartial(t *testing.T) {
	lf, err := LoadLetterFile(writeLetter(t, `document_url = "https://example.com/b.pdf"`))
	if err != nil {
		t.Fatalf("LoadLetterFile() error = %v", err)
	}

	sender := &mailfinch.Address{Name: "Keep"}
	l := &mailfinch.Letter{Sender: sender}
	if err := lf.Apply(l); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if l.Sender != sender {
		t.Error("unset sender should be left alone")
	}
	if l.DocumentURL != "https://example.com/b.pdf" {
		t.Errorf("DocumentURL = %s", l.DocumentURL)
	}
}

func TestLetterFile_BadDate(t *testing.T) {
	lf := LetterFile{MailingDate: "01/05/2024"}
	if err := lf.Apply(&mailfinch.Letter{}); err == nil {
		t.Error("expected error for malformed mailing_date")
	}
}
