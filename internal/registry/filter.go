package registry

import (
	"path/filepath"
	"strings"
)

// MatchName reports whether a case name matches pattern.
// Supports patterns like "square*" or "*fixed*"; a pattern without wildcards
// matches any name containing it.
func MatchName(name, pattern string) bool {
	if pattern == "" {
		return true
	}

	// Try to match using filepath.Match (supports * and ? wildcards)
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	// filepath.Match stops "*" at "/", so names like "math/square()" are
	// matched here with "*" spanning any run of characters.
	if strings.Contains(pattern, "*") {
		parts := strings.Split(pattern, "*")
		first, last := parts[0], parts[len(parts)-1]
		if !strings.HasPrefix(name, first) {
			return false
		}
		rest := name[len(first):]
		for _, part := range parts[1 : len(parts)-1] {
			i := strings.Index(rest, part)
			if i < 0 {
				return false
			}
			rest = rest[i+len(part):]
		}
		return strings.HasSuffix(rest, last)
	}

	// If no wildcards, do a simple contains check
	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}
