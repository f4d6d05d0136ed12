package service

import "errors"

var (
	// ErrNotFound covers missing entities and invalid status targets.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when chunk 0 hits an existing staging file.
	ErrConflict = errors.New("file already exists")
	// ErrSizeMismatch is returned when the reassembled size differs from
	// the declared total. The partial file stays on disk.
	ErrSizeMismatch = errors.New("size mismatch")
	// ErrTooLarge is returned when a completed upload exceeds the cap.
	ErrTooLarge = errors.New("file too large")
	// ErrTooManyFiles is returned when an order hits its file cap.
	ErrTooManyFiles = errors.New("too many files for order")
	// ErrNotClosable rejects closing a group order without a positive result.
	ErrNotClosable = errors.New("group order has no positive result")
	// ErrForbidden is returned when the caller lacks capability.
	ErrForbidden = errors.New("forbidden")
)
