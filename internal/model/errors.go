package model

import "errors"

var (
	// ErrNotFound is returned when a task is not in the registry.
	ErrNotFound = errors.New("not found")
	// ErrNotValid is returned when a task or a request is not valid.
	ErrNotValid = errors.New("not valid")
)
