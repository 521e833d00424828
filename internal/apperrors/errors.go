package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInUse indicates that a resource cannot be removed while other resources reference it.
var ErrInUse = errors.New("resource is still referenced")

// ErrDatabase indicates that the underlying storage failed.
var ErrDatabase = errors.New("database operation failed")

// Kind classifies an error for the HTTP boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidParameter
	KindNotFound
	KindEntityExists
	KindEntityInUse
	KindDatabaseOperation
)

func (k Kind) String() string {
	switch k {
	case KindInvalidParameter:
		return "InvalidParameter"
	case KindNotFound:
		return "NotFound"
	case KindEntityExists:
		return "EntityExists"
	case KindEntityInUse:
		return "EntityInUse"
	case KindDatabaseOperation:
		return "DatabaseOperation"
	default:
		return "Internal"
	}
}

// sentinel returns the package level error matched by errors.Is for the kind.
func (k Kind) sentinel() error {
	switch k {
	case KindInvalidParameter:
		return ErrValidation
	case KindNotFound:
		return ErrNotFound
	case KindEntityExists:
		return ErrDuplicate
	case KindEntityInUse:
		return ErrInUse
	case KindDatabaseOperation:
		return ErrDatabase
	default:
		return nil
	}
}

// AppError carries a kind, a client facing message and an optional cause.
type AppError struct {
	Kind    Kind
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

// Is lets errors.Is(err, ErrNotFound) and friends match on the kind.
func (e *AppError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// NewAppError creates an AppError of the given kind.
func NewAppError(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// NewValidationError creates an invalid parameter error.
func NewValidationError(message string) *AppError {
	return NewAppError(KindInvalidParameter, message, nil)
}

// NewNotFoundError creates a not found error.
func NewNotFoundError(message string) *AppError {
	return NewAppError(KindNotFound, message, nil)
}

// NewDuplicateError creates an entity exists error.
func NewDuplicateError(message string) *AppError {
	return NewAppError(KindEntityExists, message, nil)
}

// NewInUseError creates an entity in use error.
func NewInUseError(message string) *AppError {
	return NewAppError(KindEntityInUse, message, nil)
}

// NewDatabaseError wraps a storage failure behind a generic message.
func NewDatabaseError(message string, err error) *AppError {
	return NewAppError(KindDatabaseOperation, message, err)
}

// RouteNotFoundError reports that no rate could be resolved between two currencies.
type RouteNotFoundError struct {
	BaseCode   string
	TargetCode string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("Exchange rate '%s' - '%s' not found in the database", e.BaseCode, e.TargetCode)
}

func (e *RouteNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// KindOf reports the kind of err. Errors outside the taxonomy are KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	switch {
	case errors.Is(err, ErrValidation):
		return KindInvalidParameter
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrDuplicate):
		return KindEntityExists
	case errors.Is(err, ErrInUse):
		return KindEntityInUse
	case errors.Is(err, ErrDatabase):
		return KindDatabaseOperation
	}
	return KindInternal
}

// MessageOf returns the client facing message for err.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	var routeErr *RouteNotFoundError
	if errors.As(err, &routeErr) {
		return routeErr.Error()
	}
	return "Internal server error"
}
