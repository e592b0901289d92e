package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var _ Comparator = (*gemVersion)(nil)

// gemVersion mirrors Ruby's Gem::Version: versions partition into numeric and
// alphabetic segments, letters mark prereleases, and trailing zero segments
// are insignificant.
type gemVersion struct {
	original     string
	canonical    []any
	isPrerelease bool
}

var (
	gemSegmentPattern     = regexp.MustCompile(`(\d+|[a-zA-Z]+)`)
	gemCorrectnessPattern = regexp.MustCompile(`^[0-9a-zA-Z.\-]+$`)
)

// platform suffixes that rubygems appends to version strings; they carry no
// ordering information
var gemPlatforms = []string{"x86", "universal", "arm", "java", "dalvik", "x64", "powerpc", "sparc", "mswin"}

func newGemVersion(raw string) (gemVersion, error) {
	processed := strings.TrimSpace(stripGemPlatform(raw))
	if processed == "" {
		processed = "0"
	}

	if !gemCorrectnessPattern.MatchString(processed) {
		return gemVersion{}, fmt.Errorf("malformed version number string %q", raw)
	}
	if strings.Contains(processed, "..") {
		return gemVersion{}, fmt.Errorf("malformed version number string %q", raw)
	}

	processed = strings.ReplaceAll(processed, "-", ".pre.")

	isPrerelease := strings.ContainsFunc(processed, func(r rune) bool {
		return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
	})

	segments := partitionGemSegments(processed)
	if len(segments) == 0 {
		return gemVersion{}, fmt.Errorf("malformed version number string %q", raw)
	}

	canonical := trimInsignificantZeros(segments, isPrerelease)
	if len(canonical) == 0 {
		canonical = []any{0}
	}

	return gemVersion{
		original:     raw,
		canonical:    canonical,
		isPrerelease: isPrerelease,
	}, nil
}

func stripGemPlatform(raw string) string {
	for _, p := range gemPlatforms {
		if fields := strings.SplitN(raw, "-"+p, 2); len(fields) == 2 {
			return fields[0]
		}
	}
	return raw
}

func partitionGemSegments(versionString string) []any {
	parts := gemSegmentPattern.FindAllString(versionString, -1)

	segments := make([]any, 0, len(parts))
	for _, s := range parts {
		if n, err := strconv.Atoi(s); err == nil {
			segments = append(segments, n)
		} else {
			segments = append(segments, s)
		}
	}
	return segments
}

// trimInsignificantZeros drops trailing numeric zeros, and for prereleases
// also the zeros immediately preceding the first alphabetic segment
// ("1.0.0.pre" canonicalizes to "1.pre").
func trimInsignificantZeros(segments []any, isPrerelease bool) []any {
	trimmed := trimTrailingZeros(segments)

	if !isPrerelease {
		return trimmed
	}

	firstLetter := -1
	for i, seg := range trimmed {
		if _, ok := seg.(string); ok {
			firstLetter = i
			break
		}
	}
	if firstLetter < 1 {
		return trimmed
	}

	prefix := trimTrailingZeros(trimmed[:firstLetter])
	result := make([]any, 0, len(prefix)+len(trimmed)-firstLetter)
	result = append(result, prefix...)
	result = append(result, trimmed[firstLetter:]...)
	return result
}

func trimTrailingZeros(segments []any) []any {
	last := len(segments)
	for last > 0 {
		if num, ok := segments[last-1].(int); !ok || num != 0 {
			break
		}
		last--
	}
	return segments[:last]
}

func (v gemVersion) Compare(other *Version) (int, error) {
	if other == nil {
		return -1, ErrNoVersionProvided
	}

	o, ok := other.comparator.(gemVersion)
	if !ok {
		var err error
		o, err = newGemVersion(other.Raw)
		if err != nil {
			return -1, newInvalidVersionError(other.Scheme, other.Raw, err)
		}
	}

	return v.compare(o), nil
}

func (v gemVersion) compare(o gemVersion) int {
	left := v.canonical
	right := o.canonical

	limit := min(len(left), len(right))
	for i := 0; i < limit; i++ {
		if result := compareGemSegments(left[i], right[i]); result != 0 {
			return result
		}
	}

	// common segments are equal, the remainder decides: an alphabetic
	// segment means prerelease (smaller), a nonzero number means larger
	if len(left) > limit {
		return compareGemRemainder(left[limit:])
	}
	if len(right) > limit {
		return -compareGemRemainder(right[limit:])
	}
	return 0
}

func compareGemSegments(l, r any) int {
	lNum, lIsNum := l.(int)
	rNum, rIsNum := r.(int)

	switch {
	case lIsNum && rIsNum:
		return compareInts(lNum, rNum)
	case lIsNum:
		// numbers sort above letters
		return 1
	case rIsNum:
		return -1
	default:
		return strings.Compare(l.(string), r.(string))
	}
}

func compareGemRemainder(rest []any) int {
	for _, seg := range rest {
		if _, isStr := seg.(string); isStr {
			return -1
		}
		if num := seg.(int); num != 0 {
			return 1
		}
	}
	return 0
}

func (v gemVersion) String() string {
	return v.original
}
