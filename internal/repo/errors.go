package repo

import "errors"

var (
	// ErrInvalidArgument is returned when a mutating operation receives a nil entity.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDuplicatedValueUnique is returned when an insert violates a unique constraint.
	ErrDuplicatedValueUnique = errors.New("unique constraint violation")
	ErrUserNotFound          = errors.New("user not found")
)
