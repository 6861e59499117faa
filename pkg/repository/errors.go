package repository

import "github.com/m-mizutani/goerr/v2"

// Errors shared by all store implementations. Callers classify them with errors.Is.
var (
	// ErrNotFound is returned when no tracked repository has the name.
	ErrNotFound = goerr.New("tracked repository not found")
	// ErrAlreadyExists is returned by create style operations on a taken name.
	ErrAlreadyExists = goerr.New("tracked repository already exists")
	// ErrInvalidInput is returned for a key that cannot be stored, e.g. an empty name.
	ErrInvalidInput = goerr.New("invalid store input")
)
