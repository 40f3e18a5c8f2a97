//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

// ConfigError represents a configuration loading error.
type ConfigError struct {
	Base Error `json:"error"`

	// Path is the configuration file that failed to load.
	Path string `json:"path,omitempty"`
}

// NewConfigError creates a ConfigError.
func NewConfigError(path string, cause error) *ConfigError {
	return &ConfigError{
		Base: Error{
			Category: CategoryConfig,
			Code:     CodeConfigLoad,
			Message:  "failed to load configuration",
			Cause:    cause,
		},
		Path: path,
	}
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Path != "" {
		return e.Base.Error() + " (" + e.Path + ")"
	}
	return e.Base.Error()
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Base.Cause
}

// Is reports whether the target error matches this error by code.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	if !ok {
		return false
	}
	return e.Base.Code == t.Base.Code
}
