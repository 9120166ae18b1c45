package errors

import "fmt"

// Kind is the closed set of failure categories every layer above the
// store boundary reports. Store-native errors never leave the store
// package unwrapped.
type Kind int

const (
	KindDatabaseError Kind = iota
	KindInvalidID
	KindNotFound
	KindParseError
	KindInternalError
)

// AppError carries a kind plus the structured context of the failure:
// the offending field and raw value when one exists, and the wrapped
// lower-level cause when there is one.
type AppError struct {
	Kind    Kind
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	switch e.Kind {
	case KindDatabaseError:
		return fmt.Sprintf("Database error: %s", e.Message)
	case KindInvalidID:
		return "Invalid ID format"
	case KindNotFound:
		return "Item not found"
	case KindParseError:
		return fmt.Sprintf("Parse error: %s", e.Message)
	default:
		return "Internal server error"
	}
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ForField attaches the offending field name and raw value.
func (e *AppError) ForField(field, value string) *AppError {
	e.Field = field
	e.Value = value
	return e
}

func NewDatabaseError(message string, cause error) *AppError {
	return &AppError{Kind: KindDatabaseError, Message: message, Err: cause}
}

func NewInvalidID(value string) *AppError {
	return &AppError{Kind: KindInvalidID, Field: "_id", Value: value}
}

func NewNotFound() *AppError {
	return &AppError{Kind: KindNotFound}
}

func NewParseError(message string) *AppError {
	return &AppError{Kind: KindParseError, Message: message}
}

func NewInternalError(message string) *AppError {
	return &AppError{Kind: KindInternalError, Message: message}
}

// KindOf reports the kind of an error produced by this package.
// Anything else counts as internal.
func KindOf(err error) Kind {
	if appError, ok := err.(*AppError); ok {
		return appError.Kind
	}
	return KindInternalError
}
