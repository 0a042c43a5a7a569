package repository

import "errors"

var (
	// ErrDuplicateUser is returned when a username is already taken.
	// First writer wins; the stored identity is never overwritten.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrNotFound is returned for any lookup miss.
	ErrNotFound = errors.New("not found")
)
