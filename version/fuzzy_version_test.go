package version

import (
	"testing"
)

func TestFuzzyVersionComparison(t *testing.T) {
	tests := []struct {
		left     string
		right    string
		expected int
	}{
		{left: "1.0", right: "1.0", expected: 0},
		{left: "1.0", right: "2.0", expected: -1},
		{left: "16.3.2", right: "3.7.0", expected: 1},
		{left: "98SP1", right: "95SE", expected: 1},
		{left: "1.0.2k", right: "1.0.2l", expected: -1},
		{left: "v1.5", right: "1.5", expected: 0},
		{left: "1.5", right: "1.5.1", expected: -1},
		{left: "3.0-beta1", right: "3.0", expected: 1},
	}

	for _, test := range tests {
		t.Run(test.left+" vs "+test.right, func(t *testing.T) {
			if actual := fuzzyVersionComparison(test.left, test.right); actual != test.expected {
				t.Errorf("fuzzyVersionComparison(%q, %q) = %d, expected %d", test.left, test.right, actual, test.expected)
			}
		})
	}
}

func TestFuzzyVersionSemverAware(t *testing.T) {
	tests := []struct {
		left     string
		right    string
		expected int
	}{
		// both semver-ish: semver rules apply, so a prerelease sorts below
		{left: "1.0.0-alpha", right: "1.0.0", expected: -1},
		{left: "1.2.3", right: "1.10.0", expected: -1},
		// not semver-ish: plain fuzzy comparison
		{left: "2012u3", right: "2012u10", expected: -1},
	}

	for _, test := range tests {
		t.Run(test.left+" vs "+test.right, func(t *testing.T) {
			left, err := New(test.left, SchemeGeneric)
			if err != nil {
				t.Fatalf("unable to parse %q: %v", test.left, err)
			}
			right, err := New(test.right, SchemeGeneric)
			if err != nil {
				t.Fatalf("unable to parse %q: %v", test.right, err)
			}

			actual, err := left.Compare(right)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if actual != test.expected {
				t.Errorf("Compare(%q, %q) = %d, expected %d", test.left, test.right, actual, test.expected)
			}
		})
	}
}
