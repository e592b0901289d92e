package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var _ Comparator = (*rpmVersion)(nil)

type rpmVersion struct {
	epoch   *int
	version string
	release string
}

func newRpmVersion(raw string) (rpmVersion, error) {
	epoch, remainder, err := splitEpochFromVersion(raw)
	if err != nil {
		return rpmVersion{}, err
	}

	fields := strings.SplitN(remainder, "-", 2)

	var release string
	if len(fields) > 1 {
		release = fields[1]
	}

	return rpmVersion{
		epoch:   epoch,
		version: fields[0],
		release: release,
	}, nil
}

// A missing epoch is kept as nil rather than assumed to be 0: advisory
// sources are inconsistent about including epochs, and comparison can only
// safely use them when both sides carry one explicitly.
func splitEpochFromVersion(raw string) (*int, string, error) {
	fields := strings.SplitN(raw, ":", 2)

	if len(fields) == 1 {
		return nil, raw, nil
	}

	epochStr := strings.TrimLeft(fields[0], " ")

	epoch, err := strconv.Atoi(epochStr)
	if err != nil {
		return nil, "", fmt.Errorf("unable to parse epoch (%s): %w", epochStr, err)
	}

	return &epoch, fields[1], nil
}

func (v rpmVersion) Compare(other *Version) (int, error) {
	if other == nil {
		return -1, ErrNoVersionProvided
	}

	o, ok := other.comparator.(rpmVersion)
	if !ok {
		var err error
		o, err = newRpmVersion(other.Raw)
		if err != nil {
			return -1, newInvalidVersionError(other.Scheme, other.Raw, err)
		}
	}

	return v.compare(o), nil
}

func (v rpmVersion) compare(o rpmVersion) int {
	if v.epoch != nil && o.epoch != nil {
		if result := compareInts(*v.epoch, *o.epoch); result != 0 {
			return result
		}
	}

	if result := compareRpmSegments(v.version, o.version); result != 0 {
		return result
	}

	return compareRpmSegments(v.release, o.release)
}

func compareInts(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

func (v rpmVersion) String() string {
	var sb strings.Builder
	if v.epoch != nil {
		fmt.Fprintf(&sb, "%d:", *v.epoch)
	}
	sb.WriteString(v.version)
	if v.release != "" {
		fmt.Fprintf(&sb, "-%s", v.release)
	}
	return sb.String()
}

var rpmSegmentPattern = regexp.MustCompile("([a-zA-Z]+)|([0-9]+)|(~)")

// compareRpmSegments compares two version or release strings without the
// epoch, following the segment rules of rpmvercmp (see
// https://github.com/rpm-software-management/rpm/blob/master/rpmio/rpmvercmp.c).
func compareRpmSegments(a, b string) int {
	if a == b {
		return 0
	}

	segsA := rpmSegmentPattern.FindAllString(a, -1)
	segsB := rpmSegmentPattern.FindAllString(b, -1)
	minSegs := min(len(segsA), len(segsB))

	for i := 0; i < minSegs; i++ {
		segA := segsA[i]
		segB := segsB[i]

		// a tilde sorts before everything, including the end of the string
		if segA[0] == '~' || segB[0] == '~' {
			if segA[0] != '~' {
				return 1
			}
			if segB[0] != '~' {
				return -1
			}
			continue
		}

		if unicode.IsDigit(rune(segA[0])) {
			if !unicode.IsDigit(rune(segB[0])) {
				// numeric segments always sort above alphabetic ones
				return 1
			}

			segA = strings.TrimLeft(segA, "0")
			segB = strings.TrimLeft(segB, "0")

			if len(segA) != len(segB) {
				return compareInts(len(segA), len(segB))
			}
		} else if unicode.IsDigit(rune(segB[0])) {
			return -1
		}

		if result := strings.Compare(segA, segB); result != 0 {
			return result
		}
	}

	if len(segsA) == len(segsB) {
		// all segments equal, separators must have differed
		return 0
	}

	// a tilde in the first trailing segment sorts the longer side below
	if len(segsA) > minSegs && segsA[minSegs][0] == '~' {
		return -1
	}
	if len(segsB) > minSegs && segsB[minSegs][0] == '~' {
		return 1
	}

	// trailing segments that are all zeros do not change the ordering
	if allZeroSegments(segsA[minSegs:]) && allZeroSegments(segsB[minSegs:]) {
		return 0
	}

	return compareInts(len(segsA), len(segsB))
}

func allZeroSegments(segs []string) bool {
	for _, s := range segs {
		if s != "0" {
			return false
		}
	}
	return true
}
