package version

import (
	"regexp"
	"strings"
)

var _ Comparator = (*fuzzyVersion)(nil)

// derived from https://semver.org/, but additionally matches:
// - partial versions (e.g. "2.0")
// - optional prefix "v" (e.g. "v1.0.0")
var pseudoSemverPattern = regexp.MustCompile(`^v?(0|[1-9]\d*)(\.(0|[1-9]\d*))?(\.(0|[1-9]\d*))?(?:(-|alpha|beta|rc)((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

// fuzzyVersion compares version strings of unknown pedigree. When both sides
// look semver-ish the semver rules apply, otherwise parts are compared
// pairwise with numeric awareness.
type fuzzyVersion struct {
	semVer *semanticVersion
	raw    string
}

func newFuzzyVersion(raw string) (fuzzyVersion, error) {
	var semVer *semanticVersion

	if pseudoSemverPattern.MatchString(strings.TrimSpace(raw)) {
		if candidate, err := newSemanticVersion(raw); err == nil {
			semVer = &candidate
		}
	}

	return fuzzyVersion{
		semVer: semVer,
		raw:    raw,
	}, nil
}

func (v fuzzyVersion) Compare(other *Version) (int, error) {
	if other == nil {
		return -1, ErrNoVersionProvided
	}

	// only use semver rules when both sides qualify
	if v.semVer != nil {
		if o, ok := other.comparator.(fuzzyVersion); ok && o.semVer != nil {
			return v.semVer.obj.Compare(o.semVer.obj), nil
		}
	}

	return fuzzyVersionComparison(v.raw, other.Raw), nil
}

// The below comparison logic is derived from
// https://github.com/facebookincubator/nvdtools/blob/688794c4d3a41929eeca89304e198578d4595d53/cvefeed/nvd/smartvercmp.go
// (apache V2), which is not exported from that package.

// fuzzyVersionComparison compares stringified versions of software.
// It tries to do the right thing for any unspecified version type,
// assuming v1 and v2 have the same version convention.
// It will return meaningful result for "95SE" vs "98SP1" or for "16.3.2" vs
// "3.7.0", but not for "2000" vs "11.7".
// Returns -1 if v1 < v2, 1 if v1 > v2 and 0 if v1 == v2.
func fuzzyVersionComparison(v1, v2 string) int {
	v1 = strings.TrimPrefix(v1, "v")
	v2 = strings.TrimPrefix(v2, "v")
	for s1, s2 := v1, v2; len(s1) > 0 && len(s2) > 0; {
		num1, cmpTo1, skip1 := parseVersionParts(s1)
		num2, cmpTo2, skip2 := parseVersionParts(s2)

		ns1 := s1[:cmpTo1]
		ns2 := s2[:cmpTo2]
		diff := num1 - num2
		switch {
		case diff > 0: // ns1 has longer numeric part
			ns2 = leftPad(ns2, diff)
		case diff < 0: // ns2 has longer numeric part
			ns1 = leftPad(ns1, -diff)
		}

		// parts like "p9" vs "p15" or "2012u3" vs "2012u10" carry a
		// trailing patch number that must compare numerically
		if hasPatchNumber(ns1) && hasPatchNumber(ns2) {
			if cmp := comparePatchNumbers(ns1, ns2); cmp != 0 {
				return cmp
			}
		} else if cmp := strings.Compare(ns1, ns2); cmp != 0 {
			return cmp
		}

		s1 = s1[skip1:]
		s2 = s2[skip2:]
	}
	// everything is equal so far, the longest wins
	if len(v1) > len(v2) {
		return 1
	}
	if len(v2) > len(v1) {
		return -1
	}
	return 0
}

// parseVersionParts returns the length of the consecutive run of digits at
// the beginning of the string, the index of the last character to compare,
// and the index at which the version part (major, minor etc.) ends, i.e. the
// position of the dot or end of the line.
// E.g. parseVersionParts("11.b4.16-New_Year_Edition") returns (2, 3, 4).
func parseVersionParts(v string) (int, int, int) {
	var num int
	for num = 0; num < len(v); num++ {
		if v[num] < '0' || v[num] > '9' {
			break
		}
	}
	if num == len(v) {
		return num, num, num
	}
	// any punctuation separates the parts
	skip := strings.IndexFunc(v, func(b rune) bool {
		// punctuation is in the dec 33-126 range except the 48-57,
		// 65-90 and 97-122 (alphanumeric) gaps
		return b >= '!' && b <= '~' &&
			!(b > '/' && b < ':' ||
				b > '@' && b < '[' ||
				b > '`' && b < '{')
	})
	if skip == -1 {
		return num, len(v), len(v)
	}
	return num, skip, skip + 1
}

// leftPad pads s with n '0's
func leftPad(s string, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte('0')
	}
	sb.WriteString(s)
	return sb.String()
}

var patchSegmentPattern = regexp.MustCompile(`^(\d*)([a-zA-Z]+)(\d+)$`)

// hasPatchNumber returns true if the version part looks like it carries a
// patch number, e.g. "p9", "rc1", "8p15"
func hasPatchNumber(segment string) bool {
	return patchSegmentPattern.MatchString(segment)
}

// comparePatchNumbers compares parts of the shape <digits><letters><digits>,
// with the trailing digits compared numerically so that "u10" sorts above
// "u3"
func comparePatchNumbers(ns1, ns2 string) int {
	m1 := patchSegmentPattern.FindStringSubmatch(ns1)
	m2 := patchSegmentPattern.FindStringSubmatch(ns2)

	// the leading numeric parts were already zero-padded to a common width
	if cmp := strings.Compare(m1[1], m2[1]); cmp != 0 {
		return cmp
	}
	if cmp := strings.Compare(m1[2], m2[2]); cmp != 0 {
		return cmp
	}

	diff := len(m1[3]) - len(m2[3])
	p1, p2 := m1[3], m2[3]
	switch {
	case diff > 0:
		p2 = leftPad(p2, diff)
	case diff < 0:
		p1 = leftPad(p1, -diff)
	}
	return strings.Compare(p1, p2)
}
