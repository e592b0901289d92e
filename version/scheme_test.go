package version

import (
	"fmt"
	"testing"
)

func TestParseScheme(t *testing.T) {
	tests := []struct {
		input  string
		scheme Scheme
	}{
		{input: "alpine", scheme: SchemeAlpine},
		{input: "debian", scheme: SchemeDebian},
		{input: "gem", scheme: SchemeGem},
		{input: "generic", scheme: SchemeGeneric},
		{input: "golang", scheme: SchemeGolang},
		{input: "maven", scheme: SchemeMaven},
		{input: "npm", scheme: SchemeNpm},
		{input: "nuget", scheme: SchemeNuget},
		{input: "pypi", scheme: SchemePypi},
		{input: "rpm", scheme: SchemeRpm},
		{input: "semver", scheme: SchemeSemver},
		{input: "SemVer", scheme: SchemeSemver},
		{input: " debian ", scheme: SchemeDebian},
		// unknown tags pass through lower-cased
		{input: "Composer", scheme: Scheme("composer")},
	}

	for _, test := range tests {
		name := fmt.Sprintf("'%s'->scheme[%s]", test.input, test.scheme)
		t.Run(name, func(t *testing.T) {
			actual := ParseScheme(test.input)
			if actual != test.scheme {
				t.Errorf("mismatched scheme: '%s'!='%s'", test.scheme, actual)
			}
		})
	}
}

func TestSchemeIsKnown(t *testing.T) {
	for _, scheme := range KnownSchemes {
		if !scheme.IsKnown() {
			t.Errorf("scheme %q should be known", scheme)
		}
	}

	for _, scheme := range []Scheme{"composer", "rust", "cargo", ""} {
		if scheme.IsKnown() {
			t.Errorf("scheme %q should not be known", scheme)
		}
	}
}
