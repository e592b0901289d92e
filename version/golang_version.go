package version

import (
	"fmt"
	"strings"

	hashiVer "github.com/anchore/go-version"
)

var _ Comparator = (*golangVersion)(nil)

// golangVersion covers Go module versions: tagged semver (with or without the
// "v" prefix), "+incompatible" builds, untagged pseudo-versions
// (v0.0.0-<timestamp>-<sha>), and the bare "0" used by advisory feeds as a
// lower bound.
type golangVersion struct {
	raw              string
	semVer           *hashiVer.Version
	timestamp        string
	commitSHA        string
	incompatibleFlag bool
}

func newGolangVersion(raw string) (golangVersion, error) {
	result := golangVersion{
		raw: raw,
	}

	trimmed, incompatible := strings.CutSuffix(strings.TrimSpace(raw), "+incompatible")
	result.incompatibleFlag = incompatible

	if suffix, untagged := strings.CutPrefix(trimmed, "v0.0.0-"); untagged {
		parts := strings.Split(suffix, "-")
		if len(parts) != 2 {
			return golangVersion{}, fmt.Errorf("%s is not a valid pseudo version", raw)
		}
		result.timestamp = parts[0]
		result.commitSHA = parts[1]
		return result, nil
	}

	semVer, err := hashiVer.NewVersion(strings.TrimPrefix(trimmed, "v"))
	if err != nil {
		return golangVersion{}, err
	}
	result.semVer = semVer

	return result, nil
}

func (v golangVersion) Compare(other *Version) (int, error) {
	if other == nil {
		return -1, ErrNoVersionProvided
	}

	o, ok := other.comparator.(golangVersion)
	if !ok {
		var err error
		o, err = newGolangVersion(other.Raw)
		if err != nil {
			return -1, newInvalidVersionError(other.Scheme, other.Raw, err)
		}
	}

	return v.compare(o), nil
}

func (v golangVersion) compare(o golangVersion) int {
	switch {
	case v.semVer != nil && o.semVer != nil:
		if result := v.semVer.Compare(o.semVer); result != 0 {
			return result
		}
		return compareBool(v.incompatibleFlag, o.incompatibleFlag)
	case v.semVer == nil && o.semVer == nil:
		// both are pseudo versions, the commit timestamp orders them
		if result := strings.Compare(v.timestamp, o.timestamp); result != 0 {
			return result
		}
		return strings.Compare(v.commitSHA, o.commitSHA)
	case v.semVer == nil:
		// a pseudo version sorts as a v0.0.0 prerelease, below any tagged release
		return -1
	default:
		return 1
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}
