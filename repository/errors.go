package repository

import "errors"

var (
	// ErrNotFound means no record matched the filter. For owner-scoped
	// queries this covers both "does not exist" and "owned by someone
	// else" so callers cannot tell the two apart.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicate means an insert or update violated a unique index.
	ErrDuplicate = errors.New("repository: duplicate entry")
)
