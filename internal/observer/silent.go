package observer

import (
	"os"
	"sync/atomic"
)

// Silent counts files and directories without recording any paths or
// printing anything. It's the cheapest observer that still reports totals.
type Silent struct {
	files int64
	dirs  int64
}

// NewSilent builds a Silent observer.
func NewSilent() *Silent { return &Silent{} }

// FileMatched implements Observer.
func (s *Silent) FileMatched(path string, info os.FileInfo) {
	atomic.AddInt64(&s.files, 1)
}

// DirectoryEntered implements Observer.
func (s *Silent) DirectoryEntered(path string) {
	atomic.AddInt64(&s.dirs, 1)
}

// FilesCount implements Observer.
func (s *Silent) FilesCount() int {
	return int(atomic.LoadInt64(&s.files))
}

// DirectoriesCount implements Observer.
func (s *Silent) DirectoriesCount() int {
	return int(atomic.LoadInt64(&s.dirs))
}
