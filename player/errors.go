package player

import "errors"

var (
	// ErrAlreadyActive is returned when a flash is triggered while one runs.
	ErrAlreadyActive = errors.New("flash already active")
	// ErrGuardViolation is returned when an event arrives in a mode that does not accept it.
	ErrGuardViolation = errors.New("event not allowed in current mode")
)
