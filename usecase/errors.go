package usecase

import "errors"

var (
	// ErrInvalidInput marks validation failures. Wrapped errors carry the
	// specific message; match with errors.Is.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmailTaken is returned when registering with an email that
	// already has an account.
	ErrEmailTaken = errors.New("user already exists")

	// ErrInvalidCredentials is the single error for unknown email and
	// wrong password alike, so login failures never reveal which one it
	// was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoteNotFound covers a nonexistent note and a note owned by a
	// different user. The caller cannot tell the two apart.
	ErrNoteNotFound = errors.New("note not found or unauthorized")

	// ErrNoNotesInCategory is returned when a category listing yields no
	// notes owned by the caller.
	ErrNoNotesInCategory = errors.New("no notes found in this category")

	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryTaken    = errors.New("category already exists")
	ErrNoCategories     = errors.New("no categories found")
)
