package elements

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func TestParseTimespan(t *testing.T) {
	tests := []struct {
		text     string
		expected time.Duration
	}{
		{"1 second", time.Second},
		{"3 seconds", 3 * time.Second},
		{"a minute", time.Minute},
		{"an hour", time.Hour},
		{"1.5 minutes", 90 * time.Second},
		{"20 ticks", time.Second},
		{"1 minute and 30 seconds", 90 * time.Second},
		{"1 day, 2 hours", 26 * time.Hour},
		{"2 Weeks", 14 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			d, err := ParseTimespan(tt.text)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestParseTimespanRejects(t *testing.T) {
	for _, text := range []string{"", "soon", "3", "three seconds", "-1 second", "2 fortnights", "1 second and"} {
		_, err := ParseTimespan(text)
		assert.IsError(t, err, ErrInvalidTimespan, "%q", text)
	}
}

func TestParseTimespanRejectsOverflow(t *testing.T) {
	for _, text := range []string{
		"9999999999999 days",
		"200000 weeks",
		"1e30 seconds",
		"10000 weeks and 10000 weeks",
	} {
		d, err := ParseTimespan(text)
		assert.IsError(t, err, ErrInvalidTimespan, "%q", text)
		assert.Zero(t, d, "%q", text)
	}

	d, err := ParseTimespan("10000 weeks")
	assert.NoError(t, err)
	assert.Equal(t, 10000*7*24*time.Hour, d)
}
