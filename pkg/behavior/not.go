package behavior

import "fmt"

// Not inverts its child's Success and Failure. Running passes through.
type Not struct {
	Base
}

// NewNot panics if child is nil.
func NewNot(child Node) *Not {
	if child == nil {
		panic(fmt.Errorf("%s: %w", TypeNot, ErrNilChild))
	}
	return &Not{Base: NewBase(TypeNot, "Inverting "+child.Description(), child)}
}

func (n *Not) Tick() Status {
	switch n.children[0].Tick() {
	case Success:
		return Failure
	case Running:
		return Running
	case Failure:
		return Success
	default:
		return Failure
	}
}
