package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("booking is not pending")
	ErrInvalidEventType  = errors.New("unknown event type")
	ErrValidation        = errors.New("please fill all required fields")
)

// ValidationError lists the blank required fields of a booking form.
type ValidationError struct {
	Fields []string `json:"fields"`
}

func (e *ValidationError) Error() string {
	return "missing " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalidEventType(t string) error {
	return fmt.Errorf("%w: %q", ErrInvalidEventType, t)
}
