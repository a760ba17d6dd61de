package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes for game configuration construction and lookup.
const (
	// Construction errors
	ErrCodeConfigInvalid    = "CONFIG_INVALID"
	ErrCodeSchemaInvalid    = "SCHEMA_ERROR"
	ErrCodeResourceNotFound = "RESOURCE_NOT_FOUND"

	// Lookup errors
	ErrCodeGameNotFound = "GAME_NOT_FOUND"

	// Database errors
	ErrCodeDatabaseError = "DATABASE_ERROR"
)

// GameConfigError represents an error while building, looking up or publishing
// a game configuration record.
type GameConfigError struct {
	Code    string
	Message string
	Err     error
}

func (e *GameConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *GameConfigError) Unwrap() error {
	return e.Err
}

// NewGameConfigError creates a new GameConfigError.
func NewGameConfigError(code, message string, err error) *GameConfigError {
	return &GameConfigError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ErrConfigInvalid returns an error for a violated configuration invariant
// (RTP mismatch, quota sum, missing strip reference, broken trigger table).
func ErrConfigInvalid(format string, args ...any) *GameConfigError {
	return &GameConfigError{
		Code:    ErrCodeConfigInvalid,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrSchema returns an error for an undeclared symbol or a malformed count range.
func ErrSchema(format string, args ...any) *GameConfigError {
	return &GameConfigError{
		Code:    ErrCodeSchemaInvalid,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrResourceNotFound returns an error when a declared reel-strip resource does not resolve.
func ErrResourceNotFound(path string, err error) *GameConfigError {
	return &GameConfigError{
		Code:    ErrCodeResourceNotFound,
		Message: fmt.Sprintf("resource not found: %s", path),
		Err:     err,
	}
}

// ErrGameNotFound returns an error when no record is registered for a game ID.
func ErrGameNotFound(gameID string) *GameConfigError {
	return &GameConfigError{
		Code:    ErrCodeGameNotFound,
		Message: fmt.Sprintf("game not found: %s", gameID),
	}
}

// ErrDatabaseError wraps database errors.
func ErrDatabaseError(operation string, err error) *GameConfigError {
	return &GameConfigError{
		Code:    ErrCodeDatabaseError,
		Message: fmt.Sprintf("database error during %s", operation),
		Err:     err,
	}
}

// IsCode reports whether err, or any error it wraps, is a GameConfigError with the given code.
func IsCode(err error, code string) bool {
	var gce *GameConfigError
	if stderrors.As(err, &gce) {
		return gce.Code == code
	}
	return false
}
