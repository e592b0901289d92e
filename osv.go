package versatile

import (
	"strings"

	"github.com/scylladb/go-set/strset"

	"github.com/pombredanne/versatile/internal/log"
	"github.com/pombredanne/versatile/version"
)

// OsvEvent is a single entry of an OSV range's ordered event list.
type OsvEvent struct {
	// Type is the event key: introduced, fixed, limit, or last_affected.
	Type string
	// Value is the version the event occurred at.
	Value string
}

// osvDistroPrefixes maps Linux distribution ecosystem prefixes to schemes.
// These identifiers may carry a ":<RELEASE>" suffix (e.g. "Ubuntu:20.04")
// that is irrelevant for scheme resolution, hence the prefix match. Checked
// in order before the exact-match table.
var osvDistroPrefixes = []struct {
	prefix string
	scheme version.Scheme
}{
	{"AlmaLinux", version.SchemeRpm},
	{"Alpine", version.SchemeAlpine},
	{"Debian", version.SchemeDebian},
	{"Mageia", version.SchemeRpm},
	{"Photon OS", version.SchemeRpm},
	{"Rocky Linux", version.SchemeRpm},
	{"Ubuntu", version.SchemeDebian},
}

var osvEcosystems = map[string]version.Scheme{
	"go":       version.SchemeGolang,
	"maven":    version.SchemeMaven,
	"npm":      version.SchemeNpm,
	"nuget":    version.SchemeNuget,
	"pypi":     version.SchemePypi,
	"rubygems": version.SchemeGem,
}

// debianUpperBoundSentinels are non-version markers some Debian ranges use
// as their upper bound to signal that no fixed version is known.
var debianUpperBoundSentinels = strset.New("<end-of-life>", "<unfixed>")

// SchemeFromOsvEcosystem resolves an OSV ecosystem identifier to a
// versioning scheme. Distribution prefixes are matched first (case-sensitive,
// as published by OSV), then a case-insensitive exact-match table. The second
// return value is false when the ecosystem has no scheme mapping.
//
// See https://github.com/ossf/osv-schema/blob/main/docs/schema.md#affectedpackage-field
func SchemeFromOsvEcosystem(ecosystem string) (version.Scheme, bool) {
	for _, entry := range osvDistroPrefixes {
		if strings.HasPrefix(ecosystem, entry.prefix) {
			return entry.scheme, true
		}
	}

	scheme, ok := osvEcosystems[strings.ToLower(ecosystem)]
	return scheme, ok
}

// FromOsvRange converts a range type, ecosystem, and ordered range events as
// used by OSV into a canonical range. rangeType must be "ECOSYSTEM" or
// "SEMVER" (case-insensitive). When databaseSpecific carries a string at key
// "last_known_affected_version_range", it contributes one additional upper
// bound after all event-derived constraints.
func FromOsvRange(rangeType, ecosystem string, events []OsvEvent, databaseSpecific map[string]any) (*Vers, error) {
	if !strings.EqualFold(rangeType, "ecosystem") && !strings.EqualFold(rangeType, "semver") {
		return nil, &UnsupportedRangeTypeError{Type: rangeType}
	}

	scheme, ok := SchemeFromOsvEcosystem(ecosystem)
	if !ok {
		log.Debugf("no scheme mapping for osv ecosystem %q, using it verbatim", ecosystem)
		scheme = version.Scheme(ecosystem)
	}

	builder := NewBuilder(scheme)

	for i, event := range events {
		var comparator Comparator
		switch event.Type {
		case "introduced":
			comparator = ComparatorGreaterThanOrEqual
		case "fixed", "limit":
			comparator = ComparatorLessThan
		case "last_affected":
			comparator = ComparatorLessThanOrEqual
		default:
			return nil, &InvalidEventError{Event: event.Type, Position: i}
		}

		if scheme == version.SchemeDebian &&
			(comparator == ComparatorLessThan || comparator == ComparatorLessThanOrEqual) &&
			debianUpperBoundSentinels.Has(event.Value) {
			// Some ranges in the Debian ecosystem use these special values
			// for their upper bound, to signal that all versions are
			// affected. As they are not valid versions, we skip them.
			//
			// introduced=0, fixed=<unfixed> is equivalent to >=0.
			log.Tracef("skipping debian upper bound sentinel %q", event.Value)
			continue
		}

		builder.WithConstraint(comparator, event.Value)
	}

	if lastKnownAffected, ok := databaseSpecific["last_known_affected_version_range"].(string); ok {
		// only the two upper-bound forms are recognized here
		if versionStr, found := strings.CutPrefix(lastKnownAffected, string(ComparatorLessThanOrEqual)); found {
			builder.WithConstraint(ComparatorLessThanOrEqual, strings.TrimSpace(versionStr))
		} else if versionStr, found := strings.CutPrefix(lastKnownAffected, string(ComparatorLessThan)); found {
			builder.WithConstraint(ComparatorLessThan, strings.TrimSpace(versionStr))
		}
	}

	vers, err := builder.Build()
	if err != nil {
		return nil, err
	}

	return simplify(vers)
}
