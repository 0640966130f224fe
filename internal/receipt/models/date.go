package models

import (
	"encoding/json"
	"strings"
	"time"
)

// dateFormats lists the accepted input shapes, tried in order; first match
// wins. The sample data is always YYYY-MM-DD, but receipts in the wild carry
// a handful of human-readable variants, so we target those too. Output is
// always the canonical first form.
var dateFormats = []string{
	"2006-01-02",      // 2025-01-01 (preferred)
	"January 2, 2006", // "January 1, 2025"
	"Jan 2, 2006",     // "Jan 1, 2025"
	"2 January 2006",  // "1 January 2025"
	"2 Jan 2006",      // "1 Jan 2025"
	"2006/01/02",      // "2025/01/01"
	"2006.01.02",      // "2025.01.01"
}

// Date is a calendar date without a time zone. The zero value is usable and
// serializes as "0001-01-01".
type Date struct {
	t time.Time
}

// ParseDate converts a loosely-formatted date string into a canonical Date.
// Calendrically invalid dates (day 32, month 13) fail even when they match a
// shape lexically; time.Parse enforces the calendar for us.
func ParseDate(field, raw string) (Date, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{t: t}, nil
		}
	}
	return Date{}, &FormatError{Kind: "date", Field: field, Value: s, Accepted: dateFormats}
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.t.Day()
}

// String returns the canonical YYYY-MM-DD form.
func (d Date) String() string {
	return d.t.Format("2006-01-02")
}

// MarshalJSON serializes the canonical form regardless of which accepted
// shape produced the value.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// dateFromJSON decodes a raw JSON token into a Date, attributing any failure
// to the named wire field.
func dateFromJSON(field string, raw json.RawMessage) (Date, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return Date{}, expectedString("date", field)
	}
	return ParseDate(field, s)
}
