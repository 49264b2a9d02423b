package models

import "errors"

type ErrorKind int

const (
	ErrKindValidation ErrorKind = iota + 1
	ErrKindNotFound
	ErrKindUnauthorized
	ErrKindExternalService
	ErrKindPersistence
)

// AppError carries a taxonomy kind so the error handler middleware can map
// failures to status codes without string matching.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func ValidationError(message string) *AppError {
	return &AppError{Kind: ErrKindValidation, Message: message}
}

func NotFoundError(message string) *AppError {
	return &AppError{Kind: ErrKindNotFound, Message: message}
}

func UnauthorizedError(message string) *AppError {
	return &AppError{Kind: ErrKindUnauthorized, Message: message}
}

func ExternalServiceError(message string, err error) *AppError {
	return &AppError{Kind: ErrKindExternalService, Message: message, Err: err}
}

func PersistenceError(message string, err error) *AppError {
	return &AppError{Kind: ErrKindPersistence, Message: message, Err: err}
}

// KindOf returns the taxonomy kind of err, or 0 for untyped errors.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return 0
}
