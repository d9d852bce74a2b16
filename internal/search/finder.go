package search

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/harrison/sift/internal/observer"
	"github.com/harrison/sift/internal/predicate"
	"github.com/harrison/sift/internal/searcherr"
	"github.com/harrison/sift/internal/traversal"
	"github.com/harrison/sift/internal/workerpool"
)

// Finder runs a search: it validates the root, walks the tree in either a
// single-threaded mode (breadth- or depth-first, per Config.TraversalOrder)
// or, when Config.Advanced is set, across a workerpool.Pool, and collects
// results through an observer.Tracking instance registered alongside
// whatever other observers the caller wired in.
type Finder struct {
	Config     Config
	Predicates *predicate.Registry
	Policy     traversal.Policy
	Observers  *observer.Registry
	Tracking   *observer.Tracking

	// ErrorSink, if set, receives every non-fatal *searcherr.Error
	// encountered mid-walk (permission denied, a worker panic). A nil
	// ErrorSink silently drops them, matching the walk's "log and keep
	// going" policy for transient errors.
	ErrorSink func(err error)

	// visitedDirs and seenFiles dedupe on canonicalized path: a directory
	// is only ever entered once, and a file is only ever reported once,
	// even when symlink-following would otherwise reach the same inode
	// through two different paths. Both are safe for concurrent use from
	// the advanced, worker-pool mode.
	visitedDirs sync.Map
	seenFiles   sync.Map
}

// NewFinder builds a Finder wired from cfg: a predicate registry, a
// traversal policy, and an observer registry with a Tracking observer
// always present so results can be retrieved afterwards.
func NewFinder(cfg Config) (*Finder, error) {
	preds, err := BuildPredicates(cfg)
	if err != nil {
		return nil, err
	}
	policy, err := BuildTraversalPolicy(cfg)
	if err != nil {
		return nil, err
	}
	observers, tracking := BuildObservers(cfg)

	return &Finder{
		Config:     cfg,
		Predicates: preds,
		Policy:     policy,
		Observers:  observers,
		Tracking:   tracking,
	}, nil
}

// Find validates Config.Root and runs the walk, returning every path that
// passed both the traversal policy and the predicate registry.
func (f *Finder) Find() ([]string, error) {
	root := f.Config.Root
	info, err := os.Stat(root)
	if err != nil {
		return nil, searcherr.InvalidPath(root, err)
	}
	if !info.IsDir() {
		return nil, searcherr.InvalidPath(root, os.ErrInvalid)
	}

	if f.Config.Advanced {
		f.findAdvanced(root)
	} else {
		f.findSingleThreaded(root)
	}

	return f.Tracking.Snapshot(), nil
}

func (f *Finder) reportAccessError(path string, err error) {
	if f.ErrorSink != nil {
		f.ErrorSink(searcherr.Access(path, err))
	}
}

// resolveChild turns a directory entry into the os.FileInfo the rest of the
// walk should reason about. A symlink is only followed when configured to;
// if it can't be canonicalized (a broken link, a permission error on the
// target), the walk treats it as unfollowed rather than failing the whole
// entry.
func (f *Finder) resolveChild(path string, lstat os.FileInfo) os.FileInfo {
	if lstat.Mode()&os.ModeSymlink == 0 || !f.Config.FollowSymlinks {
		return lstat
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return lstat
	}
	target, err := os.Stat(resolved)
	if err != nil {
		return lstat
	}
	return target
}

// canonicalKey returns the path's canonicalized form for dedup purposes. A
// failed canonicalization (broken link, unreadable segment) falls back to
// the literal path rather than silently treating two different failures as
// the same entry.
func canonicalKey(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}

// enterDir reports whether path may be entered: it returns false for a
// directory whose canonical path has already been entered, satisfying the
// "never re-enter a directory" invariant even when symlink-following would
// otherwise reach it twice.
func (f *Finder) enterDir(path string) bool {
	key := canonicalKey(path)
	_, loaded := f.visitedDirs.LoadOrStore(key, struct{}{})
	return !loaded
}

// markFile reports whether path has not yet been reported as a match,
// recording it if so. It is the file-side counterpart of enterDir, so a
// file reached by two different symlinked paths is only ever reported once.
func (f *Finder) markFile(path string) bool {
	key := canonicalKey(path)
	_, loaded := f.seenFiles.LoadOrStore(key, struct{}{})
	return !loaded
}

func (f *Finder) considerFile(path string, info os.FileInfo) {
	if !f.Policy.ShouldConsiderFile(path, info) {
		return
	}
	if f.Predicates.Evaluate(path, info) != predicate.Accept {
		return
	}
	if !f.markFile(path) {
		return
	}
	f.Observers.FileMatched(path, info)
}

// findSingleThreaded walks the tree on the calling goroutine in either
// breadth-first or depth-first order.
func (f *Finder) findSingleThreaded(root string) {
	if f.Config.TraversalOrder == DepthFirst {
		f.walkDFS(root, 0)
		return
	}
	f.walkBFS(root)
}

func (f *Finder) readDir(path string) ([]os.DirEntry, bool) {
	entries, err := os.ReadDir(path)
	if err != nil {
		f.reportAccessError(path, err)
		return nil, false
	}
	return entries, true
}

func (f *Finder) walkDFS(path string, depth int) {
	if !f.enterDir(path) {
		return
	}
	f.Observers.DirectoryEntered(path)
	entries, ok := f.readDir(path)
	if !ok {
		return
	}

	for _, entry := range entries {
		childPath := filepath.Join(path, entry.Name())
		lstat, err := entry.Info()
		if err != nil {
			f.reportAccessError(childPath, err)
			continue
		}
		info := f.resolveChild(childPath, lstat)

		if info.IsDir() {
			if !f.Policy.ShouldEnterDirectory(childPath, info) {
				continue
			}
			if f.Config.MaxDepth != nil && depth+1 > *f.Config.MaxDepth {
				continue
			}
			if !f.Config.Recursive {
				continue
			}
			f.walkDFS(childPath, depth+1)
			continue
		}
		f.considerFile(childPath, info)
	}
}

func (f *Finder) walkBFS(root string) {
	type queued struct {
		path  string
		depth int
	}
	queue := []queued{{root, 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if !f.enterDir(cur.path) {
			continue
		}
		f.Observers.DirectoryEntered(cur.path)
		entries, ok := f.readDir(cur.path)
		if !ok {
			continue
		}

		for _, entry := range entries {
			childPath := filepath.Join(cur.path, entry.Name())
			lstat, err := entry.Info()
			if err != nil {
				f.reportAccessError(childPath, err)
				continue
			}
			info := f.resolveChild(childPath, lstat)

			if info.IsDir() {
				if !f.Policy.ShouldEnterDirectory(childPath, info) {
					continue
				}
				if f.Config.MaxDepth != nil && cur.depth+1 > *f.Config.MaxDepth {
					continue
				}
				if !f.Config.Recursive {
					continue
				}
				queue = append(queue, queued{childPath, cur.depth + 1})
				continue
			}
			f.considerFile(childPath, info)
		}
	}
}

// findAdvanced walks the tree across a bounded workerpool.Pool, per
// Config.Workers (defaulting to GOMAXPROCS-equivalent NumCPU).
func (f *Finder) findAdvanced(root string) {
	workers := f.Config.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	onDirectory := func(item workerpool.WorkItem, pool *workerpool.Pool) {
		if !f.enterDir(item.Path) {
			return
		}
		f.Observers.DirectoryEntered(item.Path)
		entries, ok := f.readDir(item.Path)
		if !ok {
			return
		}

		for _, entry := range entries {
			childPath := filepath.Join(item.Path, entry.Name())
			lstat, err := entry.Info()
			if err != nil {
				f.reportAccessError(childPath, err)
				continue
			}
			info := f.resolveChild(childPath, lstat)

			if info.IsDir() {
				if !f.Policy.ShouldEnterDirectory(childPath, info) {
					continue
				}
				if f.Config.MaxDepth != nil && item.Depth+1 > *f.Config.MaxDepth {
					continue
				}
				if !f.Config.Recursive {
					continue
				}
				pool.SubmitDirectory(workerpool.WorkItem{Path: childPath, Depth: item.Depth + 1})
				continue
			}
			pool.SubmitFile(workerpool.WorkItem{Path: childPath, Depth: item.Depth + 1})
		}
	}

	onFile := func(item workerpool.WorkItem) {
		lstat, err := os.Lstat(item.Path)
		if err != nil {
			f.reportAccessError(item.Path, err)
			return
		}
		info := f.resolveChild(item.Path, lstat)
		f.considerFile(item.Path, info)
	}

	onPanic := func(workerID int, recovered interface{}) {
		if f.ErrorSink != nil {
			f.ErrorSink(searcherr.WorkerPanic(workerID, recovered))
		}
	}

	pool := workerpool.New(workers, workerpool.DefaultQueueCapacity, onDirectory, onFile, onPanic)
	pool.SubmitRoot(root)
	pool.Join()
}
