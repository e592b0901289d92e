package version

import (
	"strings"

	"github.com/scylladb/go-set/strset"
)

// Scheme identifies the set of rules used to parse and order version strings
// for one packaging ecosystem. Advisory sources reference ecosystems this
// module has no mapping for, so Scheme is an open string type: unknown
// ecosystem identifiers are carried verbatim as the scheme tag and compared
// with the fuzzy comparator.
type Scheme string

const (
	SchemeAlpine  Scheme = "alpine"
	SchemeDebian  Scheme = "debian"
	SchemeGem     Scheme = "gem"
	SchemeGeneric Scheme = "generic"
	SchemeGolang  Scheme = "golang"
	SchemeMaven   Scheme = "maven"
	SchemeNpm     Scheme = "npm"
	SchemeNuget   Scheme = "nuget"
	SchemePypi    Scheme = "pypi"
	SchemeRpm     Scheme = "rpm"
	SchemeSemver  Scheme = "semver"
)

var KnownSchemes = []Scheme{
	SchemeAlpine,
	SchemeDebian,
	SchemeGem,
	SchemeGeneric,
	SchemeGolang,
	SchemeMaven,
	SchemeNpm,
	SchemeNuget,
	SchemePypi,
	SchemeRpm,
	SchemeSemver,
}

var knownSchemeSet = strset.New(knownSchemeTags()...)

func knownSchemeTags() []string {
	tags := make([]string, len(KnownSchemes))
	for i, s := range KnownSchemes {
		tags[i] = string(s)
	}
	return tags
}

// ParseScheme normalizes a user-supplied scheme tag. Known tags are matched
// case-insensitively; anything else is passed through lower-cased so that a
// raw ecosystem identifier can serve as a scheme tag.
func ParseScheme(userStr string) Scheme {
	normalized := strings.ToLower(strings.TrimSpace(userStr))
	return Scheme(normalized)
}

// IsKnown indicates whether the scheme has a dedicated comparator, as opposed
// to falling back to fuzzy comparison.
func (s Scheme) IsKnown() bool {
	return knownSchemeSet.Has(string(s))
}

func (s Scheme) String() string {
	return string(s)
}
