package hashring

import "errors"

var (
	// ErrInvalidArgument is returned when a weight or config value cannot be
	// placed on the ring. The ring is left untouched.
	ErrInvalidArgument = errors.New("hashring: invalid argument")

	// ErrUnknownHasher is returned by HasherByName for unsupported names.
	ErrUnknownHasher = errors.New("hashring: unknown hasher")
)
