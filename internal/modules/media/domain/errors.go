package domain

import "errors"

var (
	ErrInvalidImage = errors.New("file is not a supported image")
	ErrForeignURL   = errors.New("url does not belong to this storage")
)
