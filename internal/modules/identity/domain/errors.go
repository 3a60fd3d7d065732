package domain

import "errors"

var (
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email, password or role")
	ErrNoSession          = errors.New("no active session")
	ErrForbidden          = errors.New("action not permitted for this role")
	ErrInvalidRole        = errors.New("invalid role")
	ErrMissingFields      = errors.New("missing required fields")
)
