package domain

import "errors"

// Failure taxonomy for the auth pipeline and the CRUD services. Callers
// discriminate with errors.Is; the HTTP layer owns the status mapping.
var (
	// ErrNotAuthorized covers both unknown email and wrong password so a
	// login response never reveals which half failed.
	ErrNotAuthorized = errors.New("not authorized")

	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token revoked")
	ErrForbidden    = errors.New("access forbidden")

	ErrUserExists          = errors.New("user already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrPetNotFound         = errors.New("pet not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentConflict = errors.New("appointment slot already taken")

	ErrInvalidInput = errors.New("invalid input")
)
