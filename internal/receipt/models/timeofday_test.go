package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay_AcceptedShapes(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"24-hour", "13:01", "13:01"},
		{"24-hour midnight", "00:00", "00:00"},
		{"24-hour with seconds discarded", "14:33:59", "14:33"},
		{"12-hour pm", "02:15 PM", "14:15"},
		{"12-hour am", "09:30 AM", "09:30"},
		{"12-hour noon", "12:00 PM", "12:00"},
		{"12-hour midnight", "12:00 AM", "00:00"},
		{"12-hour with seconds discarded", "04:00:30 PM", "16:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tod, err := ParseTimeOfDay("purchaseTime", tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, tod.String())
		})
	}
}

func TestParseTimeOfDay_Rejected(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"hour out of range", "24:00"},
		{"minute out of range", "13:60"},
		{"12-hour without meridiem hour 13", "13:00 PM"},
		{"12-hour zero hour pm", "00:30 PM"},
		{"12-hour zero hour am", "00:30 AM"},
		{"12-hour zero hour with seconds", "00:30:00 PM"},
		{"free text", "afternoon"},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTimeOfDay("purchaseTime", tc.input)
			require.Error(t, err)

			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, "purchaseTime", fe.Field)
			assert.Contains(t, fe.Error(), "Invalid time format in 'purchaseTime'")
		})
	}
}

func TestTimeOfDay_CanonicalRoundTrip(t *testing.T) {
	tod, err := ParseTimeOfDay("purchaseTime", "02:33:10 PM")
	require.NoError(t, err)
	require.Equal(t, "14:33", tod.String())

	again, err := ParseTimeOfDay("purchaseTime", tod.String())
	require.NoError(t, err)
	assert.Equal(t, tod, again)
}
