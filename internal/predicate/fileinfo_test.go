package predicate

import (
	"os"
	"time"
)

// fakeFileInfo is a minimal os.FileInfo stub for predicate tests, since the
// predicates only ever look at Size, IsDir, and ModTime.
type fakeFileInfo struct {
	name    string
	size    int64
	isDir   bool
	modTime time.Time
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return f.size }
func (f fakeFileInfo) Mode() os.FileMode  { return 0 }
func (f fakeFileInfo) ModTime() time.Time { return f.modTime }
func (f fakeFileInfo) IsDir() bool        { return f.isDir }
func (f fakeFileInfo) Sys() interface{}   { return nil }

func file(size int64) os.FileInfo {
	return fakeFileInfo{size: size}
}

func dir() os.FileInfo {
	return fakeFileInfo{isDir: true}
}

func fileAt(t time.Time) os.FileInfo {
	return fakeFileInfo{modTime: t}
}
