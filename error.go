package versatile

import "fmt"

// InvalidConstraintError is returned when a token of a textual range
// expression matches no known comparator prefix.
type InvalidConstraintError struct {
	Constraint string
	Position   int
}

func (e *InvalidConstraintError) Error() string {
	return fmt.Sprintf("invalid constraint %q at position %d", e.Constraint, e.Position)
}

// InvalidEventError is returned when an OSV range event carries an
// unrecognized event key.
type InvalidEventError struct {
	Event    string
	Position int
}

func (e *InvalidEventError) Error() string {
	return fmt.Sprintf("invalid event %q at position %d", e.Event, e.Position)
}

// UnsupportedRangeTypeError is returned when an OSV range type is neither
// "ECOSYSTEM" nor "SEMVER".
type UnsupportedRangeTypeError struct {
	Type string
}

func (e *UnsupportedRangeTypeError) Error() string {
	return fmt.Sprintf("range type %q is not supported", e.Type)
}

// InvalidRangeError is returned when an assembled constraint set violates
// the canonical range's well-formedness rules.
type InvalidRangeError struct {
	Scheme string
	Err    error
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range (scheme=%q): %v", e.Scheme, e.Err)
}

func (e *InvalidRangeError) Unwrap() error {
	return e.Err
}
