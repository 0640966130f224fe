package models

import (
	"fmt"
	"strings"
)

// FormatError reports a receipt field whose raw value matched none of the
// accepted input shapes. It carries everything the submitter needs to fix
// the payload: the wire field name, the offending value, and the accepted
// formats.
type FormatError struct {
	Kind     string // "date", "time" or "decimal"
	Field    string
	Value    string
	Accepted []string

	// wrongType marks a field that must be a JSON string but held some
	// other token type.
	wrongType bool
}

func (e *FormatError) Error() string {
	if e.wrongType {
		return fmt.Sprintf("Invalid %s format in '%s': expected a string.", e.Kind, e.Field)
	}
	if len(e.Accepted) > 0 {
		return fmt.Sprintf("Invalid %s format in '%s': '%s'. Expected formats: %s",
			e.Kind, e.Field, e.Value, strings.Join(e.Accepted, ", "))
	}
	return fmt.Sprintf("Invalid %s format in '%s': '%s'. Expected a valid numeric value.",
		e.Kind, e.Field, e.Value)
}

func expectedString(kind, field string) *FormatError {
	return &FormatError{Kind: kind, Field: field, wrongType: true}
}
