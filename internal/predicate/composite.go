package predicate

import "os"

// Operation selects how a Composite combines its children's decisions.
type Operation int

const (
	// And requires every child to Accept; the first non-Accept decision
	// short-circuits and becomes the result.
	And Operation = iota
	// Or accepts as soon as any child Accepts; if none do, a Prune seen
	// along the way beats an outright Reject.
	Or
)

// Composite combines several predicates into one using And or Or semantics.
type Composite struct {
	children  []Predicate
	operation Operation
}

// NewComposite builds a Composite over the given children.
func NewComposite(operation Operation, children ...Predicate) *Composite {
	return &Composite{children: children, operation: operation}
}

// Evaluate implements Predicate.
func (c *Composite) Evaluate(path string, info os.FileInfo) Decision {
	switch c.operation {
	case Or:
		sawPrune := false
		for _, child := range c.children {
			switch child.Evaluate(path, info) {
			case Accept:
				return Accept
			case Prune:
				sawPrune = true
			}
		}
		if sawPrune {
			return Prune
		}
		return Reject
	default: // And
		for _, child := range c.children {
			if d := child.Evaluate(path, info); d != Accept {
				return d
			}
		}
		return Accept
	}
}
