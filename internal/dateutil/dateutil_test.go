package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayOf(t *testing.T) {
	got := DayOf(time.Date(2024, 1, 15, 23, 45, 12, 999, time.UTC))
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got)

	// A non-UTC timestamp is converted before truncation.
	loc := time.FixedZone("UTC+9", 9*3600)
	got = DayOf(time.Date(2024, 1, 16, 3, 0, 0, 0, loc))
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestDaysBetween(t *testing.T) {
	jan1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	jan4 := time.Date(2024, 1, 4, 2, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, DaysBetween(jan1, jan4))
	assert.Equal(t, -3, DaysBetween(jan4, jan1))
	assert.Equal(t, 0, DaysBetween(jan1, jan1))
}

func TestAddDays(t *testing.T) {
	day := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), AddDays(day, 1))
	assert.Equal(t, time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC), AddDays(day, -1))
}
