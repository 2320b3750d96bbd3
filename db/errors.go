package db

import "errors"

var (
	// ErrInvalidArgument is returned before any mutation for a nil book or
	// backing, or an ISBN that is not positive.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound reports that no book is stored under an ISBN.
	ErrNotFound = errors.New("book not found")

	// ErrDuplicateISBN means a freshly minted ISBN was already present in
	// the backing, which only happens if the backing is shared.
	ErrDuplicateISBN = errors.New("duplicate isbn")
)
