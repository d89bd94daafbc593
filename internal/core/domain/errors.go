package domain

import "errors"

var (
	// ErrDuplicateIdentity is returned when registering an email that already exists.
	ErrDuplicateIdentity = errors.New("identity already exists")
	// ErrIdentityNotFound is returned when no identity matches the given email.
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrInvalidCredentials covers both unknown email and password mismatch;
	// callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned for empty, malformed, expired or revoked tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrUnauthenticated is the guard's translation of a failed token validation.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden is returned when a valid identity lacks the required capability.
	ErrForbidden = errors.New("access forbidden")
	// ErrEmployeeNotFound is returned when no employee matches the given id.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrValidation is returned for structurally invalid input.
	ErrValidation = errors.New("invalid input")
)
