package versatile

import "fmt"

const (
	ComparatorEqual              Comparator = "="
	ComparatorLessThan           Comparator = "<"
	ComparatorLessThanOrEqual    Comparator = "<="
	ComparatorGreaterThan        Comparator = ">"
	ComparatorGreaterThanOrEqual Comparator = ">="
	ComparatorWildcard           Comparator = "*"
)

// Comparator relates a constraint's version bound to the versions it matches.
type Comparator string

func ParseComparator(op string) (Comparator, error) {
	switch op {
	case string(ComparatorEqual), "":
		return ComparatorEqual, nil
	case string(ComparatorLessThan):
		return ComparatorLessThan, nil
	case string(ComparatorLessThanOrEqual):
		return ComparatorLessThanOrEqual, nil
	case string(ComparatorGreaterThan):
		return ComparatorGreaterThan, nil
	case string(ComparatorGreaterThanOrEqual):
		return ComparatorGreaterThanOrEqual, nil
	case string(ComparatorWildcard):
		return ComparatorWildcard, nil
	}
	return "", fmt.Errorf("unknown comparator: %q", op)
}

func (c Comparator) String() string {
	return string(c)
}

// comparatorPrefixes is the prefix table used when tokenizing textual range
// expressions. Two-character comparators are listed before their
// one-character prefixes so that "<=" is never parsed as "<".
var comparatorPrefixes = []Comparator{
	ComparatorLessThanOrEqual,
	ComparatorLessThan,
	ComparatorGreaterThanOrEqual,
	ComparatorGreaterThan,
	ComparatorEqual,
}
