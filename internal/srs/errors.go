package srs

import "errors"

var (
	// ErrInvalidQuality is returned when a review quality is outside [0, 5].
	ErrInvalidQuality = errors.New("quality must be between 0 and 5")

	// ErrNotFound is returned by explicit lookups that miss.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateCard is returned when an insert races another writer on
	// the learner+flashcard uniqueness constraint.
	ErrDuplicateCard = errors.New("card already exists for learner and flashcard")
)
