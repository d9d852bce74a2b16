package predicate

import (
	"os"
	"path/filepath"
	"strings"
)

// Name accepts files whose base name contains a configured substring.
// Directories always Accept.
type Name struct {
	substring     string
	caseSensitive bool
}

// NewName builds a Name predicate matching against the base name of a path.
func NewName(substring string, caseSensitive bool) *Name {
	n := &Name{substring: substring, caseSensitive: caseSensitive}
	if !caseSensitive {
		n.substring = strings.ToLower(substring)
	}
	return n
}

// Evaluate implements Predicate.
func (n *Name) Evaluate(path string, info os.FileInfo) Decision {
	if info != nil && info.IsDir() {
		return Accept
	}
	if n.substring == "" {
		return Accept
	}

	base := filepath.Base(path)
	if !n.caseSensitive {
		base = strings.ToLower(base)
	}
	if strings.Contains(base, n.substring) {
		return Accept
	}
	return Reject
}
