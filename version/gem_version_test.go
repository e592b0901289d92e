package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGemVersion(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr bool
	}{
		{raw: "1.0.0"},
		{raw: "1.0.0.rc1"},
		{raw: "1.0.0-java"},
		{raw: "5.2.1.1"},
		{raw: "1.0.0.pre.1"},
		{raw: "1..0", wantErr: true},
		{raw: "1.0 beta", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.raw, func(t *testing.T) {
			_, err := newGemVersion(test.raw)
			if test.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGemVersionCompare(t *testing.T) {
	tests := []struct {
		left     string
		right    string
		expected int
	}{
		{left: "1.0.0", right: "1.0.0", expected: 0},
		{left: "1.0.0", right: "1.0.1", expected: -1},
		{left: "1.10.0", right: "1.9.0", expected: 1},
		// trailing zeros are insignificant
		{left: "1.0", right: "1.0.0", expected: 0},
		{left: "1", right: "1.0.0.0", expected: 0},
		// prereleases sort below releases
		{left: "1.0.0.pre", right: "1.0.0", expected: -1},
		{left: "1.0.0.alpha", right: "1.0.0.beta", expected: -1},
		{left: "1.0.0.rc1", right: "1.0.0.rc2", expected: -1},
		// a dash introduces a prerelease segment
		{left: "1.0.0-1", right: "1.0.0", expected: -1},
		// platform suffixes are ignored
		{left: "1.0.0-java", right: "1.0.0", expected: 0},
		// numbers sort above letters
		{left: "1.0.a", right: "1.0.1", expected: -1},
	}

	for _, test := range tests {
		t.Run(test.left+" vs "+test.right, func(t *testing.T) {
			left, err := newGemVersion(test.left)
			require.NoError(t, err)
			right, err := newGemVersion(test.right)
			require.NoError(t, err)

			assert.Equal(t, test.expected, left.compare(right))
			assert.Equal(t, -test.expected, right.compare(left))
		})
	}
}
