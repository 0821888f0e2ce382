package domain

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrNoRatings means there is nothing to aggregate for a subject.
	ErrNoRatings = errors.New("no ratings found")

	ErrAlreadyRated     = errors.New("content already rated")
	ErrInvalidDirection = errors.New("invalid direction")

	ErrAnalysisFailed   = errors.New("comment analysis failed")
	ErrGenerationFailed = errors.New("content generation failed")
	ErrStoreFailure     = errors.New("store failure")
)
