package api

import (
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	got := ParseTime("2024-03-07T09:15:30Z")
	want := time.Date(2024, 3, 7, 9, 15, 30, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseTime() = %v, want %v", got, want)
	}
}

func TestParseTime_Malformed(t *testing.T) {
	for _, s := range []string{"", "yesterday", "2024-03-07", "2024-03-07T09:15:30+01:00"} {
		if got := ParseTime(s); !got.IsZero() {
			t.Errorf("ParseTime(%q) = %v, want zero", s, got)
		}
	}
}

func TestFormatTime(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	got := FormatTime(time.Date(2024, 3, 7, 11, 15, 30, 0, loc))
	if got != "2024-03-07T09:15:30Z" {
		t.Errorf("FormatTime() = %q", got)
	}
}

func TestDateParts(t *testing.T) {
	year, month, day := DateParts(time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC))
	if year != "2025" || month != "01" || day != "04" {
		t.Errorf("DateParts() = %s, %s, %s", year, month, day)
	}
}

func TestEndpoints(t *testing.T) {
	if LetterPath(7) != "letters/7" {
		t.Errorf("LetterPath(7) = %q", LetterPath(7))
	}
	if PurchasePath(7) != "letters/7/purchase" {
		t.Errorf("PurchasePath(7) = %q", PurchasePath(7))
	}
}
