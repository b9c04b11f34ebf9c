package srs

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNextEaseFactor(t *testing.T) {
	tests := []struct {
		name     string
		ef       float64
		quality  int
		expected float64
	}{
		{
			name:     "quality 5 increases EF",
			ef:       2.5,
			quality:  5,
			expected: 2.6,
		},
		{
			name:     "quality 4 maintains EF",
			ef:       2.5,
			quality:  4,
			expected: 2.5,
		},
		{
			name:     "quality 3 decreases EF slightly",
			ef:       2.5,
			quality:  3,
			expected: 2.36,
		},
		{
			name:     "quality 0 applies full penalty",
			ef:       2.5,
			quality:  0,
			expected: 1.7, // 2.5 - 0.8
		},
		{
			name:     "EF never drops below the floor",
			ef:       1.4,
			quality:  0,
			expected: 1.3,
		},
		{
			name:     "floor holds under repeated minimum quality",
			ef:       1.3,
			quality:  0,
			expected: 1.3,
		},
		{
			name:     "zero EF falls back to default",
			ef:       0,
			quality:  4,
			expected: 2.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, NextEaseFactor(tt.ef, tt.quality), 0.0001)
		})
	}
}

func TestNextEaseFactor_FloorForAllQualities(t *testing.T) {
	for quality := 0; quality <= MaxQuality; quality++ {
		ef := DefaultEaseFactor
		// Repeated reviews at a fixed quality must keep EF at or above 1.3.
		for i := 0; i < 50; i++ {
			ef = NextEaseFactor(ef, quality)
			assert.GreaterOrEqual(t, ef, MinEaseFactor, "quality %d iteration %d", quality, i)
		}
	}
}

func TestNextInterval(t *testing.T) {
	tests := []struct {
		name         string
		prevInterval int
		repetition   int
		ef           float64
		quality      int
		expected     int
	}{
		{
			name:         "lapse resets interval to zero",
			prevInterval: 30,
			repetition:   5,
			ef:           2.5,
			quality:      2,
			expected:     0,
		},
		{
			name:       "first success gives one day",
			repetition: 0,
			ef:         2.5,
			quality:    4,
			expected:   1,
		},
		{
			name:         "second success gives six days",
			prevInterval: 1,
			repetition:   1,
			ef:           2.5,
			quality:      4,
			expected:     6,
		},
		{
			name:         "third success multiplies by EF",
			prevInterval: 6,
			repetition:   2,
			ef:           2.5,
			quality:      4,
			expected:     15,
		},
		{
			name:         "growth floored at one day",
			prevInterval: 0,
			repetition:   4,
			ef:           1.3,
			quality:      3,
			expected:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextInterval(tt.prevInterval, tt.repetition, tt.ef, tt.quality))
		})
	}
}

func TestAdvance(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("successful review grows the schedule", func(t *testing.T) {
		card := &Card{
			ID:           uuid.New(),
			EaseFactor:   2.5,
			IntervalDays: 6,
			Repetition:   2,
		}

		Advance(card, 4, now)

		assert.Equal(t, 15, card.IntervalDays) // round(6 * 2.5)
		assert.Equal(t, 3, card.Repetition)
		assert.InDelta(t, 2.5, card.EaseFactor, 0.0001)
		assert.Equal(t, now.AddDate(0, 0, 15), card.DueAt)
	})

	t.Run("lapse resets progress but keeps EF penalty", func(t *testing.T) {
		card := &Card{
			EaseFactor:   2.5,
			IntervalDays: 15,
			Repetition:   3,
		}

		Advance(card, 1, now)

		assert.Equal(t, 0, card.IntervalDays)
		assert.Equal(t, 0, card.Repetition)
		assert.InDelta(t, 1.96, card.EaseFactor, 0.0001) // 2.5 - 0.54
		assert.Equal(t, now, card.DueAt)                 // due immediately
	})

	t.Run("interval uses pre-review ease factor", func(t *testing.T) {
		card := &Card{
			EaseFactor:   2.0,
			IntervalDays: 10,
			Repetition:   4,
		}

		// quality 5 raises EF to 2.1, but the interval uses the old 2.0.
		Advance(card, 5, now)

		assert.Equal(t, 20, card.IntervalDays)
		assert.InDelta(t, 2.1, card.EaseFactor, 0.0001)
	})

	t.Run("review reactivates a suspended card", func(t *testing.T) {
		card := &Card{EaseFactor: 2.5, Suspended: true}

		Advance(card, 3, now)

		assert.False(t, card.Suspended)
	})

	t.Run("fresh card ladder 1 then 6 then round(6*EF)", func(t *testing.T) {
		card := NewCard(uuid.New(), uuid.New(), now)

		Advance(card, 4, now)
		assert.Equal(t, 1, card.IntervalDays)

		Advance(card, 4, now)
		assert.Equal(t, 6, card.IntervalDays)

		Advance(card, 4, now)
		assert.Equal(t, 15, card.IntervalDays)
	})
}
