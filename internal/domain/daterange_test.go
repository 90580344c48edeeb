package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		startA, endA, startB, endB string
		want                       bool
	}{
		{"identical ranges", "2024-06-01", "2024-06-05", "2024-06-01", "2024-06-05", true},
		{"partial overlap", "2024-06-01", "2024-06-05", "2024-06-04", "2024-06-10", true},
		{"contained range", "2024-06-01", "2024-06-10", "2024-06-03", "2024-06-05", true},
		{"back to back, A before B", "2024-06-01", "2024-06-05", "2024-06-05", "2024-06-10", false},
		{"back to back, B before A", "2024-06-05", "2024-06-10", "2024-06-01", "2024-06-05", false},
		{"disjoint", "2024-06-01", "2024-06-03", "2024-06-10", "2024-06-12", false},
		{"one night inside", "2024-06-03", "2024-06-04", "2024-06-01", "2024-06-10", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			startA, endA := date(t, tt.startA), date(t, tt.endA)
			startB, endB := date(t, tt.startB), date(t, tt.endB)

			assert.Equal(t, tt.want, Overlaps(startA, endA, startB, endB))
			// overlap is symmetric
			assert.Equal(t, tt.want, Overlaps(startB, endB, startA, endA))
		})
	}
}

func TestNights(t *testing.T) {
	assert.Equal(t, 3, Nights(date(t, "2024-06-01"), date(t, "2024-06-04")))
	assert.Equal(t, 1, Nights(date(t, "2024-06-01"), date(t, "2024-06-02")))
}

func TestNights_PartialDayRoundsUp(t *testing.T) {
	// 10 AM to 9 AM next day is less than 24h but still one night
	checkin := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	checkout := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, Nights(checkin, checkout))

	// 25 hours charges two nights
	checkout = time.Date(2024, 6, 2, 11, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, Nights(checkin, checkout))
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("01/06/2024")
	require.Error(t, err)
}
