package traversal

import "os"

// Composite ANDs several policies together: every sub-policy must agree
// before the walk enters a directory or considers a file.
type Composite struct {
	policies []Policy
}

// NewComposite builds a Composite over the given sub-policies.
func NewComposite(policies ...Policy) *Composite {
	return &Composite{policies: policies}
}

// ShouldEnterDirectory implements Policy.
func (c *Composite) ShouldEnterDirectory(path string, info os.FileInfo) bool {
	for _, p := range c.policies {
		if !p.ShouldEnterDirectory(path, info) {
			return false
		}
	}
	return true
}

// ShouldConsiderFile implements Policy.
func (c *Composite) ShouldConsiderFile(path string, info os.FileInfo) bool {
	for _, p := range c.policies {
		if !p.ShouldConsiderFile(path, info) {
			return false
		}
	}
	return true
}
