package domain

import "errors"

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrInvalidKey  = errors.New("invalid storage key")
	ErrConflict    = errors.New("concurrent update conflict")
)
