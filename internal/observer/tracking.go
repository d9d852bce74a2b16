package observer

import (
	"os"
	"sync"
	"sync/atomic"
)

// Tracking records every matched path in order, in addition to counting
// files and directories. It is the observer the Finder uses to actually
// collect results, since a search otherwise only produces notifications.
type Tracking struct {
	files int64
	dirs  int64

	mu    sync.Mutex
	paths []string
}

// NewTracking builds an empty Tracking observer.
func NewTracking() *Tracking {
	return &Tracking{}
}

// FileMatched implements Observer.
func (t *Tracking) FileMatched(path string, info os.FileInfo) {
	atomic.AddInt64(&t.files, 1)
	t.mu.Lock()
	t.paths = append(t.paths, path)
	t.mu.Unlock()
}

// DirectoryEntered implements Observer.
func (t *Tracking) DirectoryEntered(path string) {
	atomic.AddInt64(&t.dirs, 1)
}

// FilesCount implements Observer.
func (t *Tracking) FilesCount() int {
	return int(atomic.LoadInt64(&t.files))
}

// DirectoriesCount implements Observer.
func (t *Tracking) DirectoriesCount() int {
	return int(atomic.LoadInt64(&t.dirs))
}

// Snapshot returns a copy of the matched paths recorded so far. Safe to call
// while the search is still running; later matches will not retroactively
// appear in a snapshot already taken.
func (t *Tracking) Snapshot() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.paths))
	copy(out, t.paths)
	return out
}

// Borrow gives the caller direct, locked access to the underlying slice via
// fn, without copying it. Useful when a copy would be wasteful (e.g. the
// caller is only reading the length or the last element). fn must not
// retain the slice after it returns.
func (t *Tracking) Borrow(fn func(paths []string)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(t.paths)
}

// Merge appends another Tracking observer's recorded paths and counts into
// this one.
func (t *Tracking) Merge(other *Tracking) {
	other.mu.Lock()
	otherPaths := make([]string, len(other.paths))
	copy(otherPaths, other.paths)
	other.mu.Unlock()

	atomic.AddInt64(&t.files, atomic.LoadInt64(&other.files))
	atomic.AddInt64(&t.dirs, atomic.LoadInt64(&other.dirs))
	t.mu.Lock()
	t.paths = append(t.paths, otherPaths...)
	t.mu.Unlock()
}
