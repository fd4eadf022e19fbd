package services

import "errors"

var (
	// ErrValidation marks a request with missing or malformed fields.
	// No state changes before it is returned.
	ErrValidation = errors.New("validation failed")
	// ErrForbidden marks an action against a terminal or banned entity.
	ErrForbidden = errors.New("forbidden")
)
