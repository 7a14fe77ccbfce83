package services

import (
	"fmt"
	"time"
)

// Statutory documents carry dates as DD-MM-YY; the full form is used where
// the template asks for an unambiguous year.
const (
	statutoryDateLayout = "02-01-06"
	fullDateLayout      = "02-01-2006"
)

// dateParseLayouts are the input formats accepted from spreadsheets and
// manual entry, tried in order.
// The short DD-MM-YY forms must come before the ISO layout: the year match
// is lenient, so "15-01-25" would otherwise parse as year 15.
var dateParseLayouts = []string{
	"02-01-2006",
	"02/01/2006",
	"02-01-06",
	"02/01/06",
	"2006-01-02",
	"2 January 2006",
	"02 Jan 2006",
}

// FormatDateStatutory renders a date in the statutory DD-MM-YY form.
func FormatDateStatutory(t time.Time) string {
	return t.Format(statutoryDateLayout)
}

// FormatDateFull renders a date in the full DD-MM-YYYY form.
func FormatDateFull(t time.Time) string {
	return t.Format(fullDateLayout)
}

// ParseDateString parses a date string in any of the accepted entry formats.
func ParseDateString(s string) (time.Time, error) {
	for _, layout := range dateParseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", s)
}

// NormalizeDateStatutory re-renders an entered date string in statutory
// form. Unparseable input is returned unchanged so a typo stays visible in
// the document instead of being silently replaced.
func NormalizeDateStatutory(s string) string {
	if s == "" {
		return ""
	}
	t, err := ParseDateString(s)
	if err != nil {
		return s
	}
	return FormatDateStatutory(t)
}

// FiscalYear returns the Indian fiscal year label for a date, e.g. a date in
// May 2024 yields "2024-25". The fiscal year runs April to March; NIT
// numbers carry this label as their suffix ("27/2024-25").
func FiscalYear(t time.Time) string {
	startYear := t.Year()
	if t.Month() < time.April {
		startYear--
	}
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}
