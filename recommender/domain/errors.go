package domain

import "errors"

var (
	// ErrJobNotFound reports that no job with the requested id exists in
	// the location searched.
	ErrJobNotFound = errors.New("job not found")

	// ErrRecommendationUnavailable reports that the model backend could not
	// produce advice, after retrying.
	ErrRecommendationUnavailable = errors.New("recommendation service unavailable")
)
