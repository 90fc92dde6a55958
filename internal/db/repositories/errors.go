package repositories

import "errors"

var (
	// ErrNotRegistered signals an operation against a user the roster does
	// not know.
	ErrNotRegistered = errors.New("user is not registered")

	// ErrInvertedRange signals an ignored-date range whose start is after
	// its end.
	ErrInvertedRange = errors.New("range start is after range end")
)
