package pointgen

import "errors"

var (
	// ErrNegativeCount indicates a requested set size below zero.
	ErrNegativeCount = errors.New("pointgen: point count must be non-negative")
	// ErrTooFewPoints indicates a planted generator was asked for fewer
	// points than the structure it plants (3 for a triple, 2 for a duplicate).
	ErrTooFewPoints = errors.New("pointgen: point count too small for the planted structure")
	// ErrBadJitter indicates a negative or non-finite jitter magnitude.
	ErrBadJitter = errors.New("pointgen: jitter must be finite and non-negative")
)
