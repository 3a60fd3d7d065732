package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrArtistNotFound    = errors.New("artist not found")
	ErrInvalidTransition = errors.New("artist is not pending review")
	ErrValidation        = errors.New("please fill all required fields")
	ErrInvalidStep       = errors.New("unknown onboarding step")
)

// ValidationError names the onboarding step that failed and its blank fields.
type ValidationError struct {
	Step   int      `json:"step"`
	Fields []string `json:"fields"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %d: missing %s", e.Step, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
