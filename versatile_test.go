package versatile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pombredanne/versatile/version"
)

func TestBuilderBuild(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		vers, err := NewBuilder(version.SchemeSemver).
			WithConstraint(ComparatorGreaterThanOrEqual, "1.2.3").
			WithConstraint(ComparatorLessThan, "5.0.1").
			Build()
		require.NoError(t, err)

		assert.Equal(t, version.SchemeSemver, vers.Scheme)
		assert.Equal(t, []Constraint{
			{Comparator: ComparatorGreaterThanOrEqual, Version: "1.2.3"},
			{Comparator: ComparatorLessThan, Version: "5.0.1"},
		}, vers.Constraints)
	})

	t.Run("blank scheme", func(t *testing.T) {
		_, err := NewBuilder("").
			WithConstraint(ComparatorEqual, "1.0.0").
			Build()

		var rangeErr *InvalidRangeError
		require.ErrorAs(t, err, &rangeErr)
	})

	t.Run("no constraints", func(t *testing.T) {
		_, err := NewBuilder(version.SchemeSemver).Build()

		var rangeErr *InvalidRangeError
		require.ErrorAs(t, err, &rangeErr)
	})

	t.Run("wildcard must be alone", func(t *testing.T) {
		_, err := NewBuilder(version.SchemeSemver).
			WithConstraint(ComparatorWildcard, "").
			WithConstraint(ComparatorLessThan, "2.0.0").
			Build()

		var rangeErr *InvalidRangeError
		require.ErrorAs(t, err, &rangeErr)
	})

	t.Run("wildcard must not carry a version", func(t *testing.T) {
		_, err := NewBuilder(version.SchemeSemver).
			WithConstraint(ComparatorWildcard, "1.0.0").
			Build()

		var rangeErr *InvalidRangeError
		require.ErrorAs(t, err, &rangeErr)
	})

	t.Run("blank version", func(t *testing.T) {
		_, err := NewBuilder(version.SchemeSemver).
			WithConstraint(ComparatorLessThan, " ").
			Build()

		var rangeErr *InvalidRangeError
		require.ErrorAs(t, err, &rangeErr)
	})

	t.Run("invalid version surfaces scheme error", func(t *testing.T) {
		_, err := NewBuilder(version.SchemeSemver).
			WithConstraint(ComparatorLessThan, "not a version").
			Build()

		var versionErr *version.InvalidVersionError
		require.ErrorAs(t, err, &versionErr)
		assert.Equal(t, version.SchemeSemver, versionErr.Scheme)
		assert.Equal(t, "not a version", versionErr.Raw)
	})

	t.Run("sole wildcard", func(t *testing.T) {
		vers, err := NewBuilder(version.SchemeGeneric).
			WithConstraint(ComparatorWildcard, "").
			Build()
		require.NoError(t, err)
		assert.Equal(t, []Constraint{{Comparator: ComparatorWildcard}}, vers.Constraints)
	})
}

func TestBuilderHasConstraints(t *testing.T) {
	builder := NewBuilder(version.SchemeGeneric)
	assert.False(t, builder.HasConstraints())

	builder.WithConstraint(ComparatorEqual, "1.0.0")
	assert.True(t, builder.HasConstraints())
}

func TestVersString(t *testing.T) {
	vers, err := NewBuilder(version.SchemeNpm).
		WithConstraint(ComparatorGreaterThanOrEqual, "1.2.3").
		WithConstraint(ComparatorLessThan, "2.0.0").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "npm:>=1.2.3|<2.0.0", vers.String())
}

func TestConversionIsIdempotent(t *testing.T) {
	// converting identical input twice must yield structurally equal ranges
	first, err := FromOsvRange("SEMVER", "npm", []OsvEvent{
		{Type: "introduced", Value: "1.0.0"},
		{Type: "fixed", Value: "2.0.0"},
	}, nil)
	require.NoError(t, err)

	second, err := FromOsvRange("SEMVER", "npm", []OsvEvent{
		{Type: "introduced", Value: "1.0.0"},
		{Type: "fixed", Value: "2.0.0"},
	}, nil)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("ranges are not structurally equal (-first +second):\n%s", diff)
	}
}
