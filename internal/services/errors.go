package services

import "errors"

// Domain-level rejections. Handlers branch on these with errors.Is to pick
// a status code instead of matching error strings.
var (
	// ErrDuplicateIdentity is returned when a signup collides with an
	// existing username or email.
	ErrDuplicateIdentity = errors.New("email or username already in use")

	// ErrDuplicateEmail is returned when an employee create collides with
	// an existing employee email.
	ErrDuplicateEmail = errors.New("employee with this email already exists")

	// ErrInvalidCredentials is returned for any login failure. It is
	// deliberately uniform: callers must not learn whether the identifier
	// or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid username/email or password")

	// ErrInvalidToken is returned for any token verification failure
	// (bad signature, malformed structure, expiry).
	ErrInvalidToken = errors.New("invalid token")
)
