package version

import (
	"fmt"
)

var _ Comparator = (*Version)(nil)

// Version is a version string parsed under a specific scheme.
type Version struct {
	Raw        string
	Scheme     Scheme
	comparator Comparator
}

// New parses raw under the given scheme. Unknown schemes get fuzzy
// comparison semantics and accept any non-empty string.
func New(raw string, scheme Scheme) (*Version, error) {
	version := &Version{
		Raw:    raw,
		Scheme: scheme,
	}

	if err := version.populate(); err != nil {
		return nil, newInvalidVersionError(scheme, raw, err)
	}

	return version, nil
}

func (v *Version) populate() error {
	var comparator Comparator
	var err error
	switch v.Scheme {
	case SchemeSemver, SchemeNpm, SchemeNuget:
		// not enforcing strict semver so that values like "v1.0.0", "1.0",
		// or "1.0a" can still be reasoned about
		comparator, err = newSemanticVersion(v.Raw)
	case SchemeAlpine:
		comparator, err = newApkVersion(v.Raw)
	case SchemeDebian:
		comparator, err = newDebVersion(v.Raw)
	case SchemeGolang:
		comparator, err = newGolangVersion(v.Raw)
	case SchemeMaven:
		comparator, err = newMavenVersion(v.Raw)
	case SchemeRpm:
		comparator, err = newRpmVersion(v.Raw)
	case SchemePypi:
		comparator, err = newPep440Version(v.Raw)
	case SchemeGem:
		comparator, err = newGemVersion(v.Raw)
	default:
		// SchemeGeneric and raw ecosystem fallbacks
		comparator, err = newFuzzyVersion(v.Raw)
	}

	v.comparator = comparator

	return err
}

func (v Version) String() string {
	return fmt.Sprintf("%s (%s)", v.Raw, v.Scheme)
}

// Compare compares this version to another version of the same scheme.
// This returns -1, 0, or 1 if this version is smaller, equal, or larger
// than the other version, respectively.
func (v Version) Compare(other *Version) (int, error) {
	if other == nil {
		return -1, ErrNoVersionProvided
	}

	return v.comparator.Compare(other)
}
