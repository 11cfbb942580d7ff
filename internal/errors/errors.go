package errors

import "fmt"

// ErrCode represents an error code
type ErrCode string

const (
	ErrCodeNotFound      ErrCode = "NOT_FOUND"
	ErrCodeGitFailed     ErrCode = "GIT_FAILED"
	ErrCodeFSFailed      ErrCode = "FS_FAILED"
	ErrCodeInvalidSpec   ErrCode = "INVALID_SPEC"
	ErrCodeAlreadyExists ErrCode = "ALREADY_EXISTS"
	ErrCodeInternal      ErrCode = "INTERNAL_ERROR"
)

// AppError represents an application error
type AppError struct {
	Code    ErrCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewGitError creates a new git backend error
func NewGitError(message string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeGitFailed,
		Message: message,
		Err:     err,
	}
}

// NewFSError creates a new filesystem error
func NewFSError(message string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeFSFailed,
		Message: message,
		Err:     err,
	}
}

// NewInvalidSpecError creates a new invalid spec error
func NewInvalidSpecError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidSpec,
		Message: message,
	}
}

// NewAlreadyExistsError creates a new already exists error
func NewAlreadyExistsError(resource string) *AppError {
	return &AppError{
		Code:    ErrCodeAlreadyExists,
		Message: fmt.Sprintf("%s already exists", resource),
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == ErrCodeNotFound
	}
	return false
}

// IsGitFailed checks if the error is a git backend error
func IsGitFailed(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == ErrCodeGitFailed
	}
	return false
}

// IsAlreadyExists checks if the error is an already exists error
func IsAlreadyExists(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == ErrCodeAlreadyExists
	}
	return false
}
