package version

import (
	"strings"

	hashiVer "github.com/anchore/go-version"
)

var _ Comparator = (*semanticVersion)(nil)

type semanticVersion struct {
	obj *hashiVer.Version
}

func newSemanticVersion(raw string) (semanticVersion, error) {
	verObj, err := hashiVer.NewVersion(strings.TrimSpace(raw))
	if err != nil {
		return semanticVersion{}, err
	}
	return semanticVersion{
		obj: verObj,
	}, nil
}

func (v semanticVersion) Compare(other *Version) (int, error) {
	if other == nil {
		return -1, ErrNoVersionProvided
	}

	if o, ok := other.comparator.(semanticVersion); ok {
		return v.obj.Compare(o.obj), nil
	}

	o, err := newSemanticVersion(other.Raw)
	if err != nil {
		return -1, newInvalidVersionError(other.Scheme, other.Raw, err)
	}

	return v.obj.Compare(o.obj), nil
}
