package versatile

import (
	"strings"

	"github.com/pombredanne/versatile/internal/log"
	"github.com/pombredanne/versatile/version"
)

// ghsaEcosystems maps GHSA ecosystem identifiers to versioning schemes.
// GHSA ecosystems without an entry (actions, composer, erlang, other, pub,
// rust) have no dedicated scheme; the raw identifier is used instead.
var ghsaEcosystems = map[string]version.Scheme{
	"go":       version.SchemeGolang,
	"maven":    version.SchemeMaven,
	"npm":      version.SchemeNpm,
	"nuget":    version.SchemeNuget,
	"pip":      version.SchemePypi,
	"rubygems": version.SchemeGem,
}

// SchemeFromGhsaEcosystem resolves a GHSA ecosystem identifier to a
// versioning scheme. The match is case-insensitive. The second return value
// is false when the ecosystem has no scheme mapping.
func SchemeFromGhsaEcosystem(ecosystem string) (version.Scheme, bool) {
	scheme, ok := ghsaEcosystems[strings.ToLower(ecosystem)]
	return scheme, ok
}

// FromGhsaRange converts an ecosystem and version range expression as used
// by GitHub Security Advisories into a canonical range.
//
// Range expressions are composed of one or more comparator-prefixed
// constraints separated by commas, e.g. ">= 1.2.3, < 5.0.1". Valid
// comparators are =, >=, >, <, and <=.
func FromGhsaRange(ecosystem, rangeExpr string) (*Vers, error) {
	scheme, ok := SchemeFromGhsaEcosystem(ecosystem)
	if !ok {
		log.Debugf("no scheme mapping for ghsa ecosystem %q, using it verbatim", ecosystem)
		scheme = version.Scheme(ecosystem)
	}

	builder := NewBuilder(scheme)

	for i, constraintExpr := range strings.Split(rangeExpr, ",") {
		constraintExpr = strings.TrimSpace(constraintExpr)

		comparator, versionStr, ok := splitConstraintExpr(constraintExpr)
		if !ok {
			return nil, &InvalidConstraintError{Constraint: constraintExpr, Position: i}
		}

		builder.WithConstraint(comparator, versionStr)
	}

	return builder.Build()
}

// splitConstraintExpr splits a constraint expression into its comparator
// prefix and version text. Prefixes are tested most-specific first.
func splitConstraintExpr(constraintExpr string) (Comparator, string, bool) {
	for _, comparator := range comparatorPrefixes {
		if versionStr, ok := strings.CutPrefix(constraintExpr, string(comparator)); ok {
			return comparator, strings.TrimSpace(versionStr), true
		}
	}
	return "", "", false
}
