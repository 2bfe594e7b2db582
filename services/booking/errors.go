package booking

import "fmt"

// ValidationError signals missing or malformed required input. Surfaced
// immediately, never retried.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{
		Code:    "validationError",
		Message: msg,
	}
}

// NotFoundError signals an unknown booking session.
type NotFoundError struct {
	Code    string
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{
		Code:    "notFoundError",
		Message: msg,
	}
}

// PreconditionError signals an operation invoked before the session reached
// the state it requires. The operation aborts without partial mutation.
type PreconditionError struct {
	Code    string
	Message string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewPreconditionError(msg string) error {
	return &PreconditionError{
		Code:    "preconditionError",
		Message: msg,
	}
}
