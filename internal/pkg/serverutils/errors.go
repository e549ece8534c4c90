package serverutils

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error kinds reported back to clients in the envelope's data.error_type.
const (
	KindValidation    = "ValidationError"
	KindNotFound      = "NotFoundError"
	KindInvocation    = "InvocationError"
	KindNormalization = "NormalizationError"
	KindStorage       = "StorageError"
	KindInternal      = "InternalError"
)

type AppError struct {
	Code    int
	Kind    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    fiber.StatusBadRequest,
		Kind:    KindValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

func NewNotFoundError(format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    fiber.StatusNotFound,
		Kind:    KindNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

func NewInvocationError(message string, err error) *AppError {
	return &AppError{
		Code:    fiber.StatusBadGateway,
		Kind:    KindInvocation,
		Message: message,
		Err:     err,
	}
}

func NewNormalizationError(message string, err error) *AppError {
	return &AppError{
		Code:    fiber.StatusBadGateway,
		Kind:    KindNormalization,
		Message: message,
		Err:     err,
	}
}

func NewStorageError(message string, err error) *AppError {
	return &AppError{
		Code:    fiber.StatusInternalServerError,
		Kind:    KindStorage,
		Message: message,
		Err:     err,
	}
}

// KindOf resolves the error kind used as error_type in envelopes.
func KindOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
