package domain

import "errors"

// Accounting errors — every failure is recoverable at the call site and
// leaves the store unchanged
var (
	ErrDuplicateActivePass = errors.New("vehicle already has an active pass")
	ErrAlreadyParked       = errors.New("vehicle is already parked inside")
	ErrNoActiveEntry       = errors.New("no active entry for this vehicle")
	ErrNotFound            = errors.New("resource not found")
	ErrValidation          = errors.New("missing or invalid field")
)
