//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

import "fmt"

// NoMatchError reports that no product or platform in the feed satisfied
// the requested identifier, base-version, version, and platform filters.
type NoMatchError struct {
	Base Error `json:"error"`

	// ProductID is the requested SAP code.
	ProductID string `json:"productId"`

	// BaseVersion is the requested base-version constraint, if any.
	BaseVersion string `json:"baseVersion,omitempty"`

	// Version is the requested version, or "latest".
	Version string `json:"version,omitempty"`

	// Channels are the requested feed channels.
	Channels []string `json:"channels,omitempty"`

	// Platforms are the requested platforms, set when a product matched
	// but none of its platforms did.
	Platforms []string `json:"platforms,omitempty"`
}

// NewNoMatchError creates a NoMatchError for a product that matched nothing
// in the feed.
func NewNoMatchError(productID, baseVersion, version string, channels []string) *NoMatchError {
	return &NoMatchError{
		Base: Error{
			Category: CategoryResolve,
			Code:     CodeNoMatch,
			Message:  fmt.Sprintf("no product matched id %q with the requested base version and version", productID),
		},
		ProductID:   productID,
		BaseVersion: baseVersion,
		Version:     version,
		Channels:    channels,
	}
}

// NewNoPlatformMatchError creates a NoMatchError for a product whose platform
// list contains none of the requested platforms.
func NewNoPlatformMatchError(productID string, platforms []string) *NoMatchError {
	return &NoMatchError{
		Base: Error{
			Category: CategoryResolve,
			Code:     CodeNoMatch,
			Message:  fmt.Sprintf("product %q has no platform matching the requested platforms", productID),
		},
		ProductID: productID,
		Platforms: platforms,
	}
}

// Error implements the error interface.
func (e *NoMatchError) Error() string {
	return e.Base.Error()
}

// Unwrap returns the underlying error.
func (e *NoMatchError) Unwrap() error {
	return e.Base.Cause
}

// Is reports whether the target error matches this error by code.
func (e *NoMatchError) Is(target error) bool {
	t, ok := target.(*NoMatchError)
	if !ok {
		return false
	}
	return e.Base.Code == t.Base.Code
}

// UnsupportedPackageError reports that the matched platform uses a packaging
// style this resolver refuses to process.
type UnsupportedPackageError struct {
	Base Error `json:"error"`

	// PlatformID is the matched platform identifier.
	PlatformID string `json:"platformId"`

	// PackageType is the unsupported packaging style tag.
	PackageType string `json:"packageType"`
}

// NewUnsupportedPackageError creates an UnsupportedPackageError.
func NewUnsupportedPackageError(platformID, packageType string) *UnsupportedPackageError {
	return &UnsupportedPackageError{
		Base: Error{
			Category: CategoryResolve,
			Code:     CodeUnsupportedPackage,
			Message:  fmt.Sprintf("%s style packages are not supported", packageType),
		},
		PlatformID:  platformID,
		PackageType: packageType,
	}
}

// Error implements the error interface.
func (e *UnsupportedPackageError) Error() string {
	return e.Base.Error()
}

// Unwrap returns the underlying error.
func (e *UnsupportedPackageError) Unwrap() error {
	return e.Base.Cause
}

// Is reports whether the target error matches this error by code.
func (e *UnsupportedPackageError) Is(target error) bool {
	t, ok := target.(*UnsupportedPackageError)
	if !ok {
		return false
	}
	return e.Base.Code == t.Base.Code
}
