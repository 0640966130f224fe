package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a currency amount with exact decimal semantics. Prices arrive as
// JSON numbers or plain decimal strings ("." decimal point, no symbols, no
// thousands separators) and always serialize back as a string fixed to two
// decimal places, rounded half away from zero.
type Money struct {
	d decimal.Decimal
}

// MoneyFromDecimal wraps an exact decimal value.
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d: d}
}

// MustMoney parses a decimal string, panicking on malformed input. Test and
// fixture helper.
func MustMoney(s string) Money {
	return Money{d: decimal.RequireFromString(s)}
}

// ParseMoney converts a raw JSON token (number or decimal string) into
// Money, attributing any failure to the named wire field.
func ParseMoney(field string, raw json.RawMessage) (Money, error) {
	s := strings.TrimSpace(string(raw))
	if len(s) > 0 && s[0] == '"' {
		var unquoted string
		if err := json.Unmarshal(raw, &unquoted); err != nil {
			return Money{}, &FormatError{Kind: "decimal", Field: field, Value: s}
		}
		s = strings.TrimSpace(unquoted)
	}
	if !isPlainDecimal(s) {
		return Money{}, &FormatError{Kind: "decimal", Field: field, Value: s}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, &FormatError{Kind: "decimal", Field: field, Value: s}
	}
	return Money{d: d}, nil
}

// isPlainDecimal reports whether s is an unsigned dot-decimal token: one or
// more digits, optionally followed by "." and one or more digits. Signs,
// exponents, grouping separators, and currency symbols all fail here even
// when the decimal library would accept them.
func isPlainDecimal(s string) bool {
	intPart, fracPart, hasDot := strings.Cut(s, ".")
	if !allDigits(intPart) {
		return false
	}
	if hasDot {
		return allDigits(fracPart)
	}
	return true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Decimal exposes the exact value for arithmetic.
func (m Money) Decimal() decimal.Decimal {
	return m.d
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.d.IsPositive()
}

// Add returns the sum of two amounts.
func (m Money) Add(o Money) Money {
	return Money{d: m.d.Add(o.d)}
}

// String returns the canonical two-decimal form, rounding half away from
// zero.
func (m Money) String() string {
	return m.d.StringFixed(2)
}

// MarshalJSON serializes the canonical two-decimal string form.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}
