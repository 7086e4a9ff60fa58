package engine

import "strings"

// MatchesPattern matches a path against a rule pattern. Only four shapes
// are supported, selected by leading/trailing '*':
//
//	*x*  substring
//	*x   suffix
//	x*   prefix
//	x    exact
//
// This is deliberately not full glob syntax; rule patterns have always
// worked this way and changing it would silently change which files rules
// match. Profile activation globs are the real globbing path.
func MatchesPattern(path, pattern string) bool {
	switch {
	case pattern == "*":
		return true
	case strings.HasPrefix(pattern, "*") && strings.HasSuffix(pattern, "*"):
		return strings.Contains(path, strings.Trim(pattern, "*"))
	case strings.HasPrefix(pattern, "*"):
		return strings.HasSuffix(path, strings.TrimPrefix(pattern, "*"))
	case strings.HasSuffix(pattern, "*"):
		return strings.HasPrefix(path, strings.TrimSuffix(pattern, "*"))
	default:
		return path == pattern
	}
}
