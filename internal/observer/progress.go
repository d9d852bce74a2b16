package observer

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/mattn/go-runewidth"
)

const (
	progressFileInterval = 100
	progressDirInterval  = 50
	maxProgressPathWidth = 60
)

// Progress prints a periodic summary to a writer as a search runs: every
// 100 files and every 50 directories, plus the most recently matched path.
// Counts are plain atomics, so printing never blocks the walk for long, and
// copying a Progress value (rather than sharing a pointer) gives each
// caller an independent snapshot of counts rather than a live view.
type Progress struct {
	out       io.Writer
	files     int64
	dirs      int64
	startedAt time.Time
}

// NewProgress builds a Progress observer writing to out. A nil out defaults
// to os.Stdout.
func NewProgress(out io.Writer) *Progress {
	if out == nil {
		out = os.Stdout
	}
	return &Progress{out: out, startedAt: time.Now()}
}

// FileMatched implements Observer.
func (p *Progress) FileMatched(path string, info os.FileInfo) {
	n := atomic.AddInt64(&p.files, 1)
	if n%progressFileInterval == 0 {
		fmt.Fprintf(p.out, "Found %d files so far... (latest: %s)\n", n, truncatePath(path, maxProgressPathWidth))
	}
}

// DirectoryEntered implements Observer.
func (p *Progress) DirectoryEntered(path string) {
	n := atomic.AddInt64(&p.dirs, 1)
	if n%progressDirInterval == 0 {
		fmt.Fprintf(p.out, "Processed %d directories so far...\n", n)
	}
}

// FilesCount implements Observer.
func (p *Progress) FilesCount() int {
	return int(atomic.LoadInt64(&p.files))
}

// DirectoriesCount implements Observer.
func (p *Progress) DirectoriesCount() int {
	return int(atomic.LoadInt64(&p.dirs))
}

// Elapsed returns the time since the observer was created.
func (p *Progress) Elapsed() time.Duration {
	return time.Since(p.startedAt)
}

// truncatePath shortens path to at most width display columns, keeping the
// tail (the most informative part of a long path) and prefixing an
// ellipsis when it had to cut.
func truncatePath(path string, width int) string {
	if runewidth.StringWidth(path) <= width {
		return path
	}
	const ellipsis = "..."
	budget := width - runewidth.StringWidth(ellipsis)
	if budget <= 0 {
		return ellipsis
	}

	runes := []rune(path)
	w := 0
	start := len(runes)
	for i := len(runes) - 1; i >= 0; i-- {
		rw := runewidth.RuneWidth(runes[i])
		if w+rw > budget {
			break
		}
		w += rw
		start = i
	}
	return ellipsis + string(runes[start:])
}
