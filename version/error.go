package version

import (
	"errors"
	"fmt"
)

var ErrNoVersionProvided = errors.New("no version provided for comparison")

// InvalidVersionError is returned when a version string cannot be parsed
// under a given scheme.
type InvalidVersionError struct {
	Scheme Scheme
	Raw    string
	Err    error
}

func newInvalidVersionError(scheme Scheme, raw string, err error) *InvalidVersionError {
	return &InvalidVersionError{
		Scheme: scheme,
		Raw:    raw,
		Err:    err,
	}
}

func (e *InvalidVersionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s version from %q: %v", e.Scheme, e.Raw, e.Err)
	}
	return fmt.Sprintf("invalid %s version from %q", e.Scheme, e.Raw)
}

func (e *InvalidVersionError) Unwrap() error {
	return e.Err
}

// NotComparableError represents a comparison attempted across schemes that
// cannot be reconciled.
type NotComparableError struct {
	Left  Scheme
	Right *Version
}

func newNotComparableError(left Scheme, right *Version) *NotComparableError {
	return &NotComparableError{
		Left:  left,
		Right: right,
	}
}

func (e *NotComparableError) Error() string {
	return fmt.Sprintf("unsupported version comparison: scheme=%q value=%q (scheme=%q)", e.Left, e.Right.Raw, e.Right.Scheme)
}
