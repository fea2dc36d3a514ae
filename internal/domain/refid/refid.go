package refid

import (
	"regexp"
	"strings"
)

var idRegex = regexp.MustCompile(`^[a-fA-F0-9]{8}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{12}$`)

// Normalize reduces an attachment reference to a bare blob identifier: the
// last non-empty path segment with any query or fragment stripped. It never
// fails; input that carries no path structure is returned as-is and treated
// as an opaque id. Normalize(Normalize(s)) == Normalize(s) for all s.
func Normalize(ref string) string {
	s := strings.TrimSpace(ref)
	if i := strings.IndexAny(s, "?#"); i != -1 {
		s = s[:i]
	}
	s = strings.TrimRight(s, "/")
	if i := strings.LastIndex(s, "/"); i != -1 {
		s = s[i+1:]
	}

	return s
}

// Valid reports whether id is syntactically well-formed for the store's
// identifier scheme (canonical UUID).
func Valid(id string) bool {
	return idRegex.MatchString(id)
}
