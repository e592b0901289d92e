package versatile

// Constraint is a single comparator + version bound within a range. Version
// holds the raw version text; it is empty only for wildcard constraints.
// Constraints are immutable values once constructed.
type Constraint struct {
	Comparator Comparator
	Version    string
}

func (c Constraint) String() string {
	if c.Comparator == ComparatorWildcard {
		return string(ComparatorWildcard)
	}
	return c.Comparator.String() + c.Version
}
