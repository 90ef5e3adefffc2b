package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateLabel(t *testing.T) {
	tests := []struct {
		label    string
		expected time.Time
		ok       bool
	}{
		{label: "2024-01-15", expected: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), ok: true},
		{label: "2024-01-31 00:00:00", expected: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), ok: true},
		{label: "2024-02-01T10:30:00", expected: time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC), ok: true},
		{label: "03/15/2024", expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), ok: true},
		{label: "2024/04/02", expected: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), ok: true},
		{label: "May 2024", expected: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), ok: true},
		{label: "Total", ok: false},
		{label: "", ok: false},
		{label: "45306", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			date, ok := ParseDateLabel(tt.label)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.expected.Equal(date), "esperado %s, obtido %s", tt.expected, date)
			}
		})
	}
}

func TestFirstDayOfMonth(t *testing.T) {
	a := FirstDayOfMonth(time.Date(2024, 1, 15, 13, 0, 0, 0, time.UTC))
	b := FirstDayOfMonth(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, a, b)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), a)
}
