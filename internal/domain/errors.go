package domain

import "errors"

var (
	// ErrNotFound indicates no usage has been recorded for the operation.
	ErrNotFound = errors.New("record not found")

	// ErrUnknownOperation indicates the operation name is not a known helper.
	ErrUnknownOperation = errors.New("unknown operation")
)
