package observer

import "os"

// Null discards every notification. It is the registry's default observer
// so a search always has at least one observer to notify without special
// casing an empty registry.
type Null struct{}

// NewNull builds a Null observer.
func NewNull() *Null { return &Null{} }

// FileMatched implements Observer.
func (n *Null) FileMatched(path string, info os.FileInfo) {}

// DirectoryEntered implements Observer.
func (n *Null) DirectoryEntered(path string) {}

// FilesCount implements Observer.
func (n *Null) FilesCount() int { return 0 }

// DirectoriesCount implements Observer.
func (n *Null) DirectoriesCount() int { return 0 }
