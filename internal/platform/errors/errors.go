package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmptyRequiredField = fmt.Errorf("%w: required field is empty", ErrInvalidInput)
	ErrNoSession          = errors.New("no session")
	ErrMalformedSession   = errors.New("malformed session record")
)
