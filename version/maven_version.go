package version

import (
	"fmt"

	mvnv "github.com/masahiro331/go-mvn-version"
)

var _ Comparator = (*mavenVersion)(nil)

type mavenVersion struct {
	raw string
	obj mvnv.Version
}

func newMavenVersion(raw string) (mavenVersion, error) {
	ver, err := mvnv.NewVersion(raw)
	if err != nil {
		return mavenVersion{}, err
	}

	return mavenVersion{
		raw: raw,
		obj: ver,
	}, nil
}

func (v mavenVersion) Compare(other *Version) (int, error) {
	if other == nil {
		return -1, ErrNoVersionProvided
	}

	o, ok := other.comparator.(mavenVersion)
	if !ok {
		var err error
		o, err = newMavenVersion(other.Raw)
		if err != nil {
			return -1, newInvalidVersionError(other.Scheme, other.Raw, err)
		}
	}

	return v.compare(o.obj)
}

func (v mavenVersion) compare(other mvnv.Version) (int, error) {
	if v.obj.Equal(other) {
		return 0, nil
	}
	if v.obj.LessThan(other) {
		return -1, nil
	}
	if v.obj.GreaterThan(other) {
		return 1, nil
	}

	return -1, fmt.Errorf("could not compare maven versions: %v with %v", other.String(), v.obj.String())
}
