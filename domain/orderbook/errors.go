package orderbook

import "errors"

var (
	// ErrInvalidPrice rejects malformed price input before any mutation.
	ErrInvalidPrice = errors.New("invalid price")

	// ErrInvalidOrder rejects malformed order input before any mutation.
	ErrInvalidOrder = errors.New("invalid order")

	// ErrOrderNotFound is returned by cancel/amend for an unknown id.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvariantViolation marks an internal consistency failure.
	// It is a bug signal, not a user error: the book halts and refuses
	// further mutation rather than risk corrupting state.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrHalted is returned for every mutation after an invariant
	// violation stopped the book.
	ErrHalted = errors.New("book halted")
)
