// Package envelope renders a printable preview of a letter's envelope.
package envelope

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signintech/gopdf"

	mailfinch "github.com/mailfinch/client-go"
)

const fontName = "body"

var (
	// ErrInvalidRecipient is returned when the letter has no usable delivery address.
	ErrInvalidRecipient = errors.New("envelope: recipient address is missing or incomplete")

	// ErrNoFont is returned when no TTF font path was given.
	ErrNoFont = errors.New("envelope: a TTF font file is required")
)

// TextLine is one line of text placed on the page. X and Y are in mm from
// the top-left corner; Size is in points.
type TextLine struct {
	X, Y float64
	Size float64
	Text string
}

// AddressLines formats a as printed lines. Empty optional parts are skipped.
func AddressLines(a *mailfinch.Address) []string {
	if a == nil {
		return nil
	}
	lines := []string{a.Name, a.Street1}
	if a.Street2 != "" {
		lines = append(lines, a.Street2)
	}

	locality := strings.TrimSpace(strings.Join(nonEmpty(a.City+",", a.State, a.Zip), " "))
	locality = strings.TrimSuffix(locality, ",")
	lines = append(lines, locality)

	if a.Country != "" {
		lines = append(lines, strings.ToUpper(a.Country))
	}
	return nonEmpty(lines...)
}

func nonEmpty(parts ...string) []string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" && p != "," {
			out = append(out, p)
		}
	}
	return out
}

// Layout places the sender and recipient blocks for l. The recipient must
// be valid; the sender is optional.
func Layout(l *mailfinch.Letter) ([]TextLine, error) {
	if l.Recipient == nil || !l.Recipient.IsValid() {
		return nil, ErrInvalidRecipient
	}

	var out []TextLine
	out = appendBlock(out, senderX, senderY, senderSize, AddressLines(l.Sender))
	out = appendBlock(out, recipientX, recipientY, recipientSize, AddressLines(l.Recipient))
	return out, nil
}

func appendBlock(out []TextLine, x, y, size float64, lines []string) []TextLine {
	step := size * ptToMM * lineSpacing
	for i, text := range lines {
		out = append(out, TextLine{X: x, Y: y + float64(i)*step, Size: size, Text: text})
	}
	return out
}

// Render writes a one-page DL envelope PDF for l to w using the TTF font
// at fontPath.
func Render(w io.Writer, l *mailfinch.Letter, fontPath string) error {
	lines, err := Layout(l)
	if err != nil {
		return err
	}
	if fontPath == "" {
		return ErrNoFont
	}

	p := &gopdf.GoPdf{}
	p.Start(gopdf.Config{
		PageSize: gopdf.Rect{W: Width, H: Height},
		Unit:     gopdf.UnitMM,
	})
	if err := p.AddTTFFont(fontName, fontPath); err != nil {
		return fmt.Errorf("envelope: load font: %w", err)
	}
	p.AddPage()

	for _, line := range lines {
		if err := p.SetFont(fontName, "", line.Size); err != nil {
			return fmt.Errorf("envelope: set font: %w", err)
		}
		p.SetX(line.X)
		p.SetY(line.Y)
		if err := p.Cell(nil, line.Text); err != nil {
			return fmt.Errorf("envelope: draw %q: %w", line.Text, err)
		}
	}

	if err := p.Write(w); err != nil {
		return fmt.Errorf("envelope: write pdf: %w", err)
	}
	return nil
}
