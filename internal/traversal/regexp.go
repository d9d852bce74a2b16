package traversal

import (
	"os"

	"github.com/coregx/coregex"
)

// Regexp gates descent and file consideration by full-path pattern: an
// exclude match always wins, otherwise an include pattern (if set) must
// match.
type Regexp struct {
	include *coregex.Regex
	exclude *coregex.Regex
}

// NewRegexp compiles include/exclude patterns into a Regexp policy. Either
// may be empty to disable that half of the gate.
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

func (r *Regexp) matches(path string) bool {
	if r.exclude != nil && r.exclude.MatchString(path) {
		return false
	}
	if r.include == nil {
		return true
	}
	return r.include.MatchString(path)
}

// ShouldEnterDirectory implements Policy.
func (r *Regexp) ShouldEnterDirectory(path string, info os.FileInfo) bool {
	return r.matches(path)
}

// ShouldConsiderFile implements Policy.
func (r *Regexp) ShouldConsiderFile(path string, info os.FileInfo) bool {
	return r.matches(path)
}
