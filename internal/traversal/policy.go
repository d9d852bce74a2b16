// Package traversal decides which directories the walk descends into and
// which files it even bothers evaluating with the predicate layer, before a
// single predicate runs. It is the second, independent pruning gate: a
// traversal policy can stop the walk from entering a subtree regardless of
// what the predicate registry would have decided about files inside it.
package traversal

import "os"

// Policy gates descent into directories and consideration of files.
// Implementations must be safe for concurrent use.
type Policy interface {
	// ShouldEnterDirectory reports whether the walk should descend into
	// the directory at path.
	ShouldEnterDirectory(path string, info os.FileInfo) bool
	// ShouldConsiderFile reports whether the walk should hand the file
	// at path to the predicate registry at all.
	ShouldConsiderFile(path string, info os.FileInfo) bool
}
