package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ErrInvalidInput marks caller mistakes (bad index, unknown field, failed
// validation) so the HTTP layer can answer 400.
var ErrInvalidInput = errors.New("invalid input")

type invalidInputError struct {
	err error
}

func (e *invalidInputError) Error() string { return e.err.Error() }

func (e *invalidInputError) Unwrap() []error { return []error{ErrInvalidInput, e.err} }

func invalid(err error) error {
	if err == nil {
		return nil
	}
	return &invalidInputError{err: err}
}
