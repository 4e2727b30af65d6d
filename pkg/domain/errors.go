package domain

import "errors"

var (
	// ErrNotFound is returned when a provider with the requested id does not exist
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is returned for malformed query arguments, like non-positive page size
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidConfig is returned for provider configuration rejected before it reaches the scheduler
	ErrInvalidConfig = errors.New("invalid provider configuration")
	// ErrAlreadyExists is returned when another provider already uses the same url
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidBody is returned by storage for raw data that is not well-formed JSON
	ErrInvalidBody = errors.New("invalid raw data body")
)
