package versatile

import (
	"strings"

	"github.com/pombredanne/versatile/version"
)

// FromNvdRange converts the version boundaries or exact version of an NVD
// CPE match into a canonical range. The scheme is always "generic" since
// NVD data carries no reliable packaging-ecosystem signal.
//
// Boundary fields take precedence over the exact version. When no boundary
// is set, the CPE version field can still tell us what is affected: an exact
// version, a wildcard ("*", all versions), or "not applicable" ("-", no
// version at all). A nil range with a nil error means no range could be
// inferred; this is the legitimate outcome for "-" and is not an error.
func FromNvdRange(versionStartExcluding, versionStartIncluding, versionEndExcluding, versionEndIncluding, exactVersion string) (*Vers, error) {
	builder := NewBuilder(version.SchemeGeneric)

	if strings.TrimSpace(versionStartExcluding) != "" {
		builder.WithConstraint(ComparatorGreaterThan, versionStartExcluding)
	}
	if strings.TrimSpace(versionStartIncluding) != "" {
		builder.WithConstraint(ComparatorGreaterThanOrEqual, versionStartIncluding)
	}
	if strings.TrimSpace(versionEndExcluding) != "" {
		builder.WithConstraint(ComparatorLessThan, versionEndExcluding)
	}
	if strings.TrimSpace(versionEndIncluding) != "" {
		builder.WithConstraint(ComparatorLessThanOrEqual, versionEndIncluding)
	}

	if !builder.HasConstraints() && strings.TrimSpace(exactVersion) != "" {
		switch exactVersion {
		case "-":
			// not applicable, no version is affected
		case "*":
			builder.WithConstraint(ComparatorWildcard, "")
		default:
			builder.WithConstraint(ComparatorEqual, exactVersion)
		}
	}

	if !builder.HasConstraints() {
		return nil, nil
	}

	return builder.Build()
}
