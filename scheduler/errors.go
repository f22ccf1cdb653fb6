package scheduler

import "errors"

var (
	// ErrInvalidDuration is returned when a bounded action gets a negative duration.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrInvalidPayload is returned when a payload lacks what its kind needs.
	ErrInvalidPayload = errors.New("invalid payload")
)
