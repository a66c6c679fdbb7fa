package matcher

import "strings"

// Match reports whether name satisfies pattern. A single star selects
// everything, an empty pattern nothing, anything else matches by prefix.
func Match(pattern, name string) bool {
	if pattern == "*" {
		return true
	}
	if pattern == "" {
		return false
	}
	return strings.HasPrefix(name, pattern)
}

// MatchAny reports whether at least one pattern matches name.
func MatchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if Match(pattern, name) {
			return true
		}
	}
	return false
}
