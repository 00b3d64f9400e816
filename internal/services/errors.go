package services

import "errors"

type ErrorCode string

const (
	ErrorInvalid              ErrorCode = "invalid"
	ErrorNotFound             ErrorCode = "not_found"
	ErrorConfirmationRequired ErrorCode = "confirmation_required"
	ErrorMissingRequired      ErrorCode = "missing_required"
)

// ServiceError carries a machine-readable code so UI bindings can decide how
// to surface a failure without string matching.
type ServiceError struct {
	Code    ErrorCode
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

func NewInvalidError(msg string) error  { return &ServiceError{Code: ErrorInvalid, Message: msg} }
func NewNotFoundError(msg string) error { return &ServiceError{Code: ErrorNotFound, Message: msg} }

func NewConfirmationRequiredError(msg string) error {
	return &ServiceError{Code: ErrorConfirmationRequired, Message: msg}
}

func NewMissingRequiredError(msg string) error {
	return &ServiceError{Code: ErrorMissingRequired, Message: msg}
}

func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
