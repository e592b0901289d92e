package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGolangVersion(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr bool
	}{
		{raw: "v1.2.3"},
		{raw: "1.2.3"},
		{raw: "v2.1.0+incompatible"},
		{raw: "v0.0.0-20210129194117-4acb7895a057"},
		{raw: "0"},
		{raw: "v0.0.0-badpseudo", wantErr: true},
		{raw: "devel/unknown", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.raw, func(t *testing.T) {
			_, err := newGolangVersion(test.raw)
			if test.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGolangVersionCompare(t *testing.T) {
	tests := []struct {
		left     string
		right    string
		expected int
	}{
		{left: "v1.2.3", right: "v1.2.3", expected: 0},
		{left: "v1.2.3", right: "1.2.3", expected: 0},
		{left: "v1.2.3", right: "v1.10.0", expected: -1},
		{left: "v1.0.0-rc1", right: "v1.0.0", expected: -1},
		// an incompatible build sorts above its compatible twin
		{left: "v2.1.0+incompatible", right: "v2.1.0", expected: 1},
		// pseudo versions order by commit timestamp
		{
			left:     "v0.0.0-20180116102854-5a71ef0e047d",
			right:    "v0.0.0-20210129194117-4acb7895a057",
			expected: -1,
		},
		// pseudo versions sort below tagged releases
		{left: "v0.0.0-20210129194117-4acb7895a057", right: "v1.0.0", expected: -1},
	}

	for _, test := range tests {
		t.Run(test.left+" vs "+test.right, func(t *testing.T) {
			left, err := newGolangVersion(test.left)
			require.NoError(t, err)
			right, err := newGolangVersion(test.right)
			require.NoError(t, err)

			assert.Equal(t, test.expected, left.compare(right))
			assert.Equal(t, -test.expected, right.compare(left))
		})
	}
}
