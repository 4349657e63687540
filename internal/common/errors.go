// Package common defines the sentinel errors shared across the directory,
// question store, codec and session layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Validation errors.
	ErrEmptyField    = errors.New("empty field")
	ErrInvalidFormat = errors.New("invalid format")
	ErrAlreadyExists = errors.New("already exists")

	// Lookup / authorization errors.
	ErrNotFound      = errors.New("not found")
	ErrWrongPassword = errors.New("wrong password")
	ErrNotOwner      = errors.New("not owner")

	// Question-specific errors.
	ErrSelfAddressed = errors.New("self addressed")
	ErrEmptyAnswer   = errors.New("empty answer")

	// ErrDataCorruption means the parent/thread association map references a
	// question that is missing from its collection. It signals a bug in the
	// store's own bookkeeping, never a user-input problem.
	ErrDataCorruption = errors.New("data corruption")

	// ErrDataFileCorruption means a data file could not be opened at startup.
	// Unlike individual malformed records, this one is fatal.
	ErrDataFileCorruption = errors.New("data file corruption")
)
