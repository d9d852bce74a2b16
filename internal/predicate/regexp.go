package predicate

import (
	"os"

	"github.com/coregx/coregex"
)

// Regexp accepts or rejects entries by matching a compiled pattern against
// the full path. An optional exclude pattern is checked first and always
// wins, mirroring the traversal-policy regex gate it was modeled on.
type Regexp struct {
	include *coregex.Regex
	exclude *coregex.Regex
}

// NewRegexp compiles include/exclude patterns into a Regexp predicate.
// Either pattern may be empty to disable that half of the gate. Patterns are
// compiled with coregex, so the usual (?i) prefix toggles case-insensitive
// matching.
func NewRegexp(include, exclude string) (*Regexp, error) {
	r := &Regexp{}
	if include != "" {
		re, err := coregex.Compile(include)
		if err != nil {
			return nil, err
		}
		r.include = re
	}
	if exclude != "" {
		re, err := coregex.Compile(exclude)
		if err != nil {
			return nil, err
		}
		r.exclude = re
	}
	return r, nil
}

// Evaluate implements Predicate.
func (r *Regexp) Evaluate(path string, info os.FileInfo) Decision {
	if info != nil && info.IsDir() {
		return Accept
	}
	if r.exclude != nil && r.exclude.MatchString(path) {
		return Reject
	}
	if r.include == nil || r.include.MatchString(path) {
		return Accept
	}
	return Reject
}
