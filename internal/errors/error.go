package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryRouting Category = "routing"
	CategoryView    Category = "view"
	CategorySchema  Category = "schema"
	CategoryConfig  Category = "config"
	CategoryUpload  Category = "upload"
	CategoryCLI     Category = "cli"
)

// AdminError is a structured error with a stable code, suggestions, and documentation.
type AdminError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (routing, view, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *AdminError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *AdminError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *AdminError) WithDetail(d string) *AdminError {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *AdminError) WithSuggestion(s string) *AdminError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *AdminError) Wrap(err error) *AdminError {
	e.Wrapped = err
	return e
}

// New creates an AdminError from a registered error code.
func New(code string) *AdminError {
	template, ok := registry[code]
	if !ok {
		return &AdminError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &AdminError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new AdminError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *AdminError {
	return &AdminError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an AdminError.
func FromError(err error, code string) *AdminError {
	if err == nil {
		return nil
	}
	if ae, ok := err.(*AdminError); ok {
		return ae
	}
	return New(code).Wrap(err)
}
