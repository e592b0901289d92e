package version

// Comparator orders a scheme-specific version value against another Version.
type Comparator interface {
	// Compare returns -1, 0, or 1 if this version is smaller, equal, or
	// larger than the other version, respectively.
	Compare(*Version) (int, error)
}
