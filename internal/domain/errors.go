package domain

import "errors"

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrDateConflict     = errors.New("property already reserved for the requested dates")
	ErrValidation       = errors.New("validation error")
)
