package versatile

// A rewriteRule collapses a redundant constraint shape into its minimal
// equivalent. Rules match the entire constraint list, never a sub-list, and
// return false when the range does not have the expected shape.
type rewriteRule func(*Vers) (*Vers, bool, error)

// rewriteRules are checked in order; the first matching rule wins and its
// result is returned as-is.
var rewriteRules = []rewriteRule{
	rewriteTrivialLowerBoundOnly,
	rewriteTrivialLowerBoundWithUpperBound,
}

// simplify applies the rewrite rules once after construction. Upstream feeds
// frequently encode "no known lower bound" as an explicit introduced=0
// event; collapsing it keeps ranges minimal and comparable across sources.
func simplify(vers *Vers) (*Vers, error) {
	for _, rule := range rewriteRules {
		rewritten, matched, err := rule(vers)
		if err != nil {
			return nil, err
		}
		if matched {
			return rewritten, nil
		}
	}
	return vers, nil
}

// >=0 is equivalent to *
func rewriteTrivialLowerBoundOnly(vers *Vers) (*Vers, bool, error) {
	if len(vers.Constraints) != 1 || !isTrivialLowerBound(vers.Constraints[0]) {
		return nil, false, nil
	}

	rewritten, err := NewBuilder(vers.Scheme).
		WithConstraint(ComparatorWildcard, "").
		Build()
	return rewritten, true, err
}

// >=0|<X is equivalent to <X
// >=0|<=X is equivalent to <=X
func rewriteTrivialLowerBoundWithUpperBound(vers *Vers) (*Vers, bool, error) {
	if len(vers.Constraints) != 2 || !isTrivialLowerBound(vers.Constraints[0]) {
		return nil, false, nil
	}

	upper := vers.Constraints[1]
	if upper.Comparator != ComparatorLessThan && upper.Comparator != ComparatorLessThanOrEqual {
		return nil, false, nil
	}

	rewritten, err := NewBuilder(vers.Scheme).
		WithConstraint(upper.Comparator, upper.Version).
		Build()
	return rewritten, true, err
}

func isTrivialLowerBound(c Constraint) bool {
	return c.Comparator == ComparatorGreaterThanOrEqual && c.Version == "0"
}
