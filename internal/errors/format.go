//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Formatter formats errors for CLI output.
type Formatter struct {
	NoColor bool
	Writer  io.Writer

	// Colors
	errorColor    *color.Color
	codeColor     *color.Color
	resourceColor *color.Color
	hintColor     *color.Color
	expectedColor *color.Color
	gotColor      *color.Color
	dimColor      *color.Color
}

// NewFormatter creates a new Formatter.
func NewFormatter(w io.Writer, noColor bool) *Formatter {
	if noColor {
		color.NoColor = true
	}

	return &Formatter{
		NoColor:       noColor,
		Writer:        w,
		errorColor:    color.New(color.FgRed, color.Bold),
		codeColor:     color.New(color.FgRed),
		resourceColor: color.New(color.FgCyan),
		hintColor:     color.New(color.FgGreen),
		expectedColor: color.New(color.FgYellow),
		gotColor:      color.New(color.FgRed),
		dimColor:      color.New(color.FgHiBlack),
	}
}

// formatErrorHeader writes the error header with code.
// Format: "Error [E401]: message" or "Error: message" if no code.
func (f *Formatter) formatErrorHeader(sb *strings.Builder, code Code, message string) {
	sb.WriteString(f.errorColor.Sprint("Error"))
	if code != "" {
		sb.WriteString(" ")
		sb.WriteString(f.codeColor.Sprintf("[%s]", code))
	}
	sb.WriteString(f.errorColor.Sprint(": "))
	sb.WriteString(message)
	sb.WriteString("\n")
}

// Format formats an error for CLI display.
func (f *Formatter) Format(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	// Try to match specific error types
	var configErr *ConfigError
	var networkErr *NetworkError
	var parseErr *ParseError
	var noMatchErr *NoMatchError
	var unsupportedErr *UnsupportedPackageError
	var baseErr *Error

	switch {
	case errors.As(err, &configErr):
		f.formatConfigError(&sb, configErr)
	case errors.As(err, &networkErr):
		f.formatNetworkError(&sb, networkErr)
	case errors.As(err, &parseErr):
		f.formatParseError(&sb, parseErr)
	case errors.As(err, &noMatchErr):
		f.formatNoMatchError(&sb, noMatchErr)
	case errors.As(err, &unsupportedErr):
		f.formatUnsupportedPackageError(&sb, unsupportedErr)
	case errors.As(err, &baseErr):
		f.formatBaseError(&sb, baseErr)
	default:
		// Fallback for non-ccfeed errors
		sb.WriteString(f.errorColor.Sprint("Error: "))
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatJSON formats an error as JSON.
func (f *Formatter) FormatJSON(err error) ([]byte, error) {
	if err == nil {
		return nil, nil
	}

	var configErr *ConfigError
	var networkErr *NetworkError
	var parseErr *ParseError
	var noMatchErr *NoMatchError
	var unsupportedErr *UnsupportedPackageError
	var baseErr *Error

	switch {
	case errors.As(err, &configErr):
		return json.MarshalIndent(configErr, "", "  ")
	case errors.As(err, &networkErr):
		return json.MarshalIndent(networkErr, "", "  ")
	case errors.As(err, &parseErr):
		return json.MarshalIndent(parseErr, "", "  ")
	case errors.As(err, &noMatchErr):
		return json.MarshalIndent(noMatchErr, "", "  ")
	case errors.As(err, &unsupportedErr):
		return json.MarshalIndent(unsupportedErr, "", "  ")
	case errors.As(err, &baseErr):
		return json.MarshalIndent(baseErr, "", "  ")
	default:
		return json.MarshalIndent(map[string]string{"error": err.Error()}, "", "  ")
	}
}

func (f *Formatter) formatConfigError(sb *strings.Builder, err *ConfigError) {
	f.formatErrorHeader(sb, err.Base.Code, err.Base.Message)
	sb.WriteString("\n")

	if err.Path != "" {
		sb.WriteString("  ")
		sb.WriteString(f.dimColor.Sprint("File: "))
		sb.WriteString(f.resourceColor.Sprint(err.Path))
		sb.WriteString("\n")
	}

	f.formatCause(sb, &err.Base)
	f.formatHint(sb, &err.Base)
}

func (f *Formatter) formatNetworkError(sb *strings.Builder, err *NetworkError) {
	f.formatErrorHeader(sb, err.Base.Code, err.Base.Message)
	sb.WriteString("\n")

	if err.URL != "" {
		sb.WriteString("  ")
		sb.WriteString(f.dimColor.Sprint("URL:    "))
		sb.WriteString(f.resourceColor.Sprint(err.URL))
		sb.WriteString("\n")
	}

	if err.StatusCode > 0 {
		sb.WriteString("  ")
		sb.WriteString(f.dimColor.Sprint("Status: "))
		sb.WriteString(f.gotColor.Sprintf("%d", err.StatusCode))
		sb.WriteString("\n")
	}

	f.formatCause(sb, &err.Base)
	f.formatHint(sb, &err.Base)
}

func (f *Formatter) formatParseError(sb *strings.Builder, err *ParseError) {
	f.formatErrorHeader(sb, err.Base.Code, err.Base.Message)
	sb.WriteString("\n")

	if err.URL != "" {
		sb.WriteString("  ")
		sb.WriteString(f.dimColor.Sprint("URL:    "))
		sb.WriteString(f.resourceColor.Sprint(err.URL))
		sb.WriteString("\n")
	}

	if err.Format != "" {
		sb.WriteString("  ")
		sb.WriteString(f.dimColor.Sprint("Format: "))
		sb.WriteString(err.Format)
		sb.WriteString("\n")
	}

	f.formatCause(sb, &err.Base)
	f.formatHint(sb, &err.Base)
}

func (f *Formatter) formatNoMatchError(sb *strings.Builder, err *NoMatchError) {
	f.formatErrorHeader(sb, err.Base.Code, err.Base.Message)
	sb.WriteString("\n")

	sb.WriteString("  ")
	sb.WriteString(f.dimColor.Sprint("Product:      "))
	sb.WriteString(f.resourceColor.Sprint(err.ProductID))
	sb.WriteString("\n")

	if err.BaseVersion != "" {
		sb.WriteString("  ")
		sb.WriteString(f.dimColor.Sprint("Base version: "))
		sb.WriteString(f.expectedColor.Sprint(err.BaseVersion))
		sb.WriteString("\n")
	}

	if err.Version != "" {
		sb.WriteString("  ")
		sb.WriteString(f.dimColor.Sprint("Version:      "))
		sb.WriteString(f.expectedColor.Sprint(err.Version))
		sb.WriteString("\n")
	}

	if len(err.Channels) > 0 {
		sb.WriteString("  ")
		sb.WriteString(f.dimColor.Sprint("Channels:     "))
		sb.WriteString(strings.Join(err.Channels, ", "))
		sb.WriteString("\n")
	}

	if len(err.Platforms) > 0 {
		sb.WriteString("  ")
		sb.WriteString(f.dimColor.Sprint("Platforms:    "))
		sb.WriteString(strings.Join(err.Platforms, ", "))
		sb.WriteString("\n")
	}

	f.formatHint(sb, &err.Base)
}

func (f *Formatter) formatUnsupportedPackageError(sb *strings.Builder, err *UnsupportedPackageError) {
	f.formatErrorHeader(sb, err.Base.Code, err.Base.Message)
	sb.WriteString("\n")

	sb.WriteString("  ")
	sb.WriteString(f.dimColor.Sprint("Platform:     "))
	sb.WriteString(f.resourceColor.Sprint(err.PlatformID))
	sb.WriteString("\n")

	sb.WriteString("  ")
	sb.WriteString(f.dimColor.Sprint("Package type: "))
	sb.WriteString(f.gotColor.Sprint(err.PackageType))
	sb.WriteString("\n")

	f.formatHint(sb, &err.Base)
}

func (f *Formatter) formatBaseError(sb *strings.Builder, err *Error) {
	f.formatErrorHeader(sb, err.Code, err.Message)

	if len(err.Details) > 0 {
		sb.WriteString("\n")
		for k, v := range err.Details {
			sb.WriteString("  ")
			sb.WriteString(f.dimColor.Sprintf("%s: ", k))
			fmt.Fprintf(sb, "%v", v)
			sb.WriteString("\n")
		}
	}

	f.formatCause(sb, err)
	f.formatHint(sb, err)
}

func (f *Formatter) formatCause(sb *strings.Builder, base *Error) {
	if base.Cause == nil {
		return
	}
	sb.WriteString("\n  ")
	sb.WriteString(f.dimColor.Sprint("Cause: "))
	sb.WriteString(base.Cause.Error())
	sb.WriteString("\n")
}

func (f *Formatter) formatHint(sb *strings.Builder, base *Error) {
	if base.Hint == "" {
		return
	}
	sb.WriteString("\n")
	sb.WriteString(f.hintColor.Sprint("Hint: "))
	sb.WriteString(base.Hint)
	sb.WriteString("\n")
}
