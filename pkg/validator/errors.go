package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidChecksum marks identifiers whose control digits do not match.
	ErrInvalidChecksum = errors.New("invalid checksum")

	// ErrOutOfRange is returned when a value falls outside its bounds.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidFormat is returned when a value does not match its pattern.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrUnknownPattern is returned when a pattern name is not registered.
	ErrUnknownPattern = errors.New("unknown pattern")
)
