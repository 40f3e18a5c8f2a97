//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

import "fmt"

// ParseError represents a malformed response body (JSON feed or XML manifest).
type ParseError struct {
	Base Error `json:"error"`

	// URL is the document source that failed to parse.
	URL string `json:"url,omitempty"`

	// Format is the expected document format ("json" or "xml").
	Format string `json:"format,omitempty"`
}

// NewParseError creates a ParseError for a document fetched from url.
func NewParseError(url, format string, cause error) *ParseError {
	return &ParseError{
		Base: Error{
			Category: CategoryParse,
			Code:     CodeParseFailed,
			Message:  fmt.Sprintf("failed to parse %s response", format),
			Cause:    cause,
		},
		URL:    url,
		Format: format,
	}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.URL != "" {
		return e.Base.Error() + " from " + e.URL
	}
	return e.Base.Error()
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Base.Cause
}

// Is reports whether the target error matches this error by code.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Base.Code == t.Base.Code
}
