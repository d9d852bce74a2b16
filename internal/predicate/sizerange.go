package predicate

import "os"

// SizeRange accepts files whose size in bytes falls within [Min, Max].
// A zero Max means unbounded. Directories always Accept.
type SizeRange struct {
	Min int64
	Max int64
}

// NewSizeRange builds a SizeRange predicate. max <= 0 means unbounded.
func NewSizeRange(min, max int64) *SizeRange {
	return &SizeRange{Min: min, Max: max}
}

// Evaluate implements Predicate.
func (s *SizeRange) Evaluate(path string, info os.FileInfo) Decision {
	if info == nil || info.IsDir() {
		return Accept
	}
	size := info.Size()
	if size < s.Min {
		return Reject
	}
	if s.Max > 0 && size > s.Max {
		return Reject
	}
	return Accept
}
