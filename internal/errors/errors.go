package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates client specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound Code = "not_found"

	// CodeInternal indicates internal system error
	CodeInternal Code = "internal"

	// CodeInvalidChoice indicates a player choice outside the valid set.
	// Nothing was mutated, the caller should re-prompt.
	CodeInvalidChoice Code = "invalid_choice"

	// CodeItemNotFound indicates an item is absent from the inventory
	CodeItemNotFound Code = "item_not_found"

	// CodeItemNotEquippable indicates an item that cannot be equipped
	CodeItemNotEquippable Code = "item_not_equippable"

	// CodeMalformedSaveData indicates a save record that could not be decoded
	CodeMalformedSaveData Code = "malformed_save_data"

	// CodeMissingSaveFile indicates there is no save record for a slot
	CodeMissingSaveFile Code = "missing_save_file"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// If it's already our error type, preserve the code
	var appErr *Error
	if errors.As(err, &appErr) {
		return &Error{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(appErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Helper functions for common error types

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// InvalidChoicef creates a formatted invalid choice error
func InvalidChoicef(format string, args ...any) *Error {
	return Newf(CodeInvalidChoice, format, args...)
}

// ItemNotFoundf creates a formatted item not found error
func ItemNotFoundf(format string, args ...any) *Error {
	return Newf(CodeItemNotFound, format, args...)
}

// ItemNotEquippablef creates a formatted item not equippable error
func ItemNotEquippablef(format string, args ...any) *Error {
	return Newf(CodeItemNotEquippable, format, args...)
}

// MalformedSaveData wraps a decode failure of a save record. A nil err
// still yields an error.
func MalformedSaveData(err error, message string) *Error {
	if err == nil {
		return New(CodeMalformedSaveData, message)
	}
	return WrapWithCode(err, CodeMalformedSaveData, message)
}

// MissingSaveFilef creates a formatted missing save error
func MissingSaveFilef(format string, args ...any) *Error {
	return Newf(CodeMissingSaveFile, format, args...)
}

// Error checking functions

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsInvalidChoice checks if the error is an invalid choice error
func IsInvalidChoice(err error) bool {
	return Is(err, CodeInvalidChoice)
}

// IsItemNotFound checks if the error is an item not found error
func IsItemNotFound(err error) bool {
	return Is(err, CodeItemNotFound)
}

// IsItemNotEquippable checks if the error is an item not equippable error
func IsItemNotEquippable(err error) bool {
	return Is(err, CodeItemNotEquippable)
}

// IsMalformedSaveData checks if the error is a malformed save error
func IsMalformedSaveData(err error) bool {
	return Is(err, CodeMalformedSaveData)
}

// IsMissingSaveFile checks if the error is a missing save error
func IsMissingSaveFile(err error) bool {
	return Is(err, CodeMissingSaveFile)
}

// IsNoCharacter reports whether a load failed in a way that should be
// treated as "no character found": the save is missing or unreadable.
func IsNoCharacter(err error) bool {
	return IsMissingSaveFile(err) || IsMalformedSaveData(err) || IsNotFound(err)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
