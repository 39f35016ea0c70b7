package nella

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAPIDate(t *testing.T) {
	want := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name    string
		dateStr string
	}{
		{name: "plain", dateStr: "2020-01-02T03:04:05"},
		{name: "fractional seconds truncated", dateStr: "2020-01-02T03:04:05.123"},
		{name: "long fraction truncated", dateStr: "2020-01-02T03:04:05.9999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAPIDate(tt.dateStr)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "got %v, want %v", got, want)
		})
	}
}

func TestParseAPIDate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
	}{
		{name: "not a date", dateStr: "not-a-date"},
		{name: "empty", dateStr: ""},
		{name: "date only", dateStr: "2020-01-02"},
		{name: "wrong separator", dateStr: "2020-01-02 03:04:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAPIDate(tt.dateStr)
			assert.ErrorIs(t, err, ErrInvalidDateFormat)
		})
	}
}
