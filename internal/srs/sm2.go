package srs

import (
	"math"
	"time"
)

const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3

	// PassQuality is the lowest quality grade counted as a successful recall.
	PassQuality = 3

	// MaxQuality is the highest quality grade a review can carry.
	MaxQuality = 5
)

// NextEaseFactor computes the ease factor after a review of the given
// quality, from the pre-review ease factor. The result is rounded to two
// decimals and floored at MinEaseFactor.
func NextEaseFactor(ef float64, quality int) float64 {
	if ef == 0 {
		ef = DefaultEaseFactor
	}

	q := float64(quality)
	next := ef + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	next = math.Round(next*100) / 100
	return math.Max(next, MinEaseFactor)
}

// NextInterval computes the review interval in days that follows a review.
// repetition is the count of consecutive successes before this review, and
// ef the pre-review ease factor. A failed recall resets the interval to
// zero: the card is due again immediately.
func NextInterval(prevInterval, repetition int, ef float64, quality int) int {
	if quality < PassQuality {
		return 0
	}

	switch repetition {
	case 0:
		return 1
	case 1:
		return 6
	default:
		next := int(math.Round(float64(prevInterval) * ef))
		if next < 1 {
			return 1
		}
		return next
	}
}

// Advance applies the update rule to the card in place for a review of the
// given quality at the given time. Callers must validate quality first.
//
// The interval and the ease-factor delta are both computed from the
// pre-review ease factor, so a lapse still lowers the ease factor even
// though it resets the repetition count and interval. A review always
// reactivates a suspended card.
func Advance(card *Card, quality int, now time.Time) {
	newEF := NextEaseFactor(card.EaseFactor, quality)
	newInterval := NextInterval(card.IntervalDays, card.Repetition, card.EaseFactor, quality)

	if quality >= PassQuality {
		card.Repetition++
	} else {
		card.Repetition = 0
	}
	card.IntervalDays = newInterval
	card.EaseFactor = newEF
	card.DueAt = now.AddDate(0, 0, newInterval)
	card.Suspended = false
}
