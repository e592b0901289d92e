// Package versatile normalizes heterogeneous vulnerability-advisory version
// ranges, as published by GHSA, OSV, and NVD, into one canonical
// scheme-tagged constraint list.
package versatile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/pombredanne/versatile/version"
)

// Vers is a canonical version range: a versioning scheme tag plus an ordered
// list of constraints. A Vers is immutable once built.
type Vers struct {
	Scheme      version.Scheme
	Constraints []Constraint
}

func (v *Vers) String() string {
	constraints := make([]string, len(v.Constraints))
	for i, c := range v.Constraints {
		constraints[i] = c.String()
	}
	return fmt.Sprintf("%s:%s", v.Scheme, strings.Join(constraints, "|"))
}

// Builder accumulates constraints for a single range. It is not safe for
// concurrent use; each conversion owns its own builder.
type Builder struct {
	scheme      version.Scheme
	constraints []Constraint
}

func NewBuilder(scheme version.Scheme) *Builder {
	return &Builder{
		scheme: scheme,
	}
}

// WithConstraint appends a constraint. Pass an empty version for wildcard
// constraints. Validation is deferred until Build.
func (b *Builder) WithConstraint(comparator Comparator, versionStr string) *Builder {
	b.constraints = append(b.constraints, Constraint{
		Comparator: comparator,
		Version:    versionStr,
	})
	return b
}

func (b *Builder) HasConstraints() bool {
	return len(b.constraints) > 0
}

// Build validates the accumulated constraints and finalizes the range.
// Structural violations surface as *InvalidRangeError; version strings
// rejected by the scheme parser surface as *version.InvalidVersionError
// (accumulated when there is more than one).
func (b *Builder) Build() (*Vers, error) {
	if strings.TrimSpace(string(b.scheme)) == "" {
		return nil, &InvalidRangeError{Scheme: string(b.scheme), Err: errors.New("scheme must not be blank")}
	}
	if len(b.constraints) == 0 {
		return nil, &InvalidRangeError{Scheme: string(b.scheme), Err: errors.New("a range must contain at least one constraint")}
	}

	var versionErrs error
	for _, c := range b.constraints {
		if c.Comparator == ComparatorWildcard {
			if len(b.constraints) > 1 {
				return nil, &InvalidRangeError{Scheme: string(b.scheme), Err: errors.New("a wildcard constraint must be the only constraint")}
			}
			if c.Version != "" {
				return nil, &InvalidRangeError{Scheme: string(b.scheme), Err: fmt.Errorf("a wildcard constraint must not carry a version (got %q)", c.Version)}
			}
			continue
		}

		if strings.TrimSpace(c.Version) == "" {
			return nil, &InvalidRangeError{Scheme: string(b.scheme), Err: fmt.Errorf("constraint %q has no version", c.Comparator)}
		}

		if _, err := version.New(c.Version, b.scheme); err != nil {
			versionErrs = multierror.Append(versionErrs, err)
		}
	}
	if versionErrs != nil {
		return nil, versionErrs
	}

	constraints := make([]Constraint, len(b.constraints))
	copy(constraints, b.constraints)

	return &Vers{
		Scheme:      b.scheme,
		Constraints: constraints,
	}, nil
}
