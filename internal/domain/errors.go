package domain

import "errors"

// Sentinel errors shared across repositories and usecases. Repositories
// translate driver errors into these; usecases map them onto HTTP-coded
// application errors.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrDuplicate       = errors.New("resource already exists")
	ErrEmptyUpdate     = errors.New("no fields to update")
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("insufficient permissions")
)
