package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// timeFormats lists the accepted input shapes, tried in order; first match
// wins. Seconds are accepted but discarded during canonicalization.
var timeFormats = []string{
	"15:04",       // 24-hour (16:00)
	"03:04 PM",    // 12-hour (04:00 PM)
	"15:04:05",    // 24-hour with seconds (16:00:00)
	"03:04:05 PM", // 12-hour with seconds (04:00:00 PM)
}

// TimeOfDay is a wall-clock time with minute precision. Hour is 0-23 after
// canonicalization regardless of which input shape was used.
type TimeOfDay struct {
	hour   int
	minute int
}

// ParseTimeOfDay converts a loosely-formatted time string into a canonical
// TimeOfDay. Out-of-range hours or minutes never survive time.Parse, with one
// exception: the "03" verb tolerates hour 00 where 12-hour clocks run 1-12,
// so meridiem layouts additionally reject a leading "00".
func ParseTimeOfDay(field, raw string) (TimeOfDay, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range timeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			if strings.Contains(layout, "PM") && strings.HasPrefix(s, "00") {
				break
			}
			return TimeOfDay{hour: t.Hour(), minute: t.Minute()}, nil
		}
	}
	return TimeOfDay{}, &FormatError{Kind: "time", Field: field, Value: s, Accepted: timeFormats}
}

// Hour returns the hour in 24-hour form.
func (t TimeOfDay) Hour() int {
	return t.hour
}

// Minute returns the minute.
func (t TimeOfDay) Minute() int {
	return t.minute
}

// String returns the canonical 24-hour HH:MM form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// MarshalJSON serializes the canonical form; seconds from the input are gone
// by this point.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func timeFromJSON(field string, raw json.RawMessage) (TimeOfDay, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return TimeOfDay{}, expectedString("time", field)
	}
	return ParseTimeOfDay(field, s)
}
