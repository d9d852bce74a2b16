package traversal

import (
	"os"
	"strings"
)

// Default is the baseline traversal policy: it optionally skips dotfiles
// and dot-directories and otherwise lets everything through.
type Default struct {
	IgnoreHidden bool
}

// NewDefault builds a Default policy.
func NewDefault(ignoreHidden bool) *Default {
	return &Default{IgnoreHidden: ignoreHidden}
}

// ShouldEnterDirectory implements Policy.
func (d *Default) ShouldEnterDirectory(path string, info os.FileInfo) bool {
	if d.IgnoreHidden && isHidden(info) {
		return false
	}
	return true
}

// ShouldConsiderFile implements Policy.
func (d *Default) ShouldConsiderFile(path string, info os.FileInfo) bool {
	if d.IgnoreHidden && isHidden(info) {
		return false
	}
	return true
}

func isHidden(info os.FileInfo) bool {
	if info == nil {
		return false
	}
	name := info.Name()
	return len(name) > 0 && strings.HasPrefix(name, ".") && name != "." && name != ".."
}
