package store

import "errors"

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when creating an entity whose id is taken.
	ErrDuplicate = errors.New("already exists")
)
