package behavior

// Sequence ticks its children in order, starting from the first on every tick,
// and returns the first status that is not Success. It succeeds only when every
// child succeeds within one tick.
type Sequence struct {
	Base
}

// NewSequence panics if children is empty.
func NewSequence(description string, children ...Node) *Sequence {
	requireChildren(TypeSequence, description, children)
	return &Sequence{Base: NewBase(TypeSequence, description, children...)}
}

func (s *Sequence) Tick() Status {
	for _, child := range s.children {
		if status := child.Tick(); status != Success {
			return status
		}
	}
	return Success
}

// SequenceMemory is a Sequence that resumes from the child that last returned
// Failure or Running instead of starting over. When the last child succeeds the
// node resets itself and its descendants before returning Success.
type SequenceMemory struct {
	Base
	cursor int
}

// NewSequenceMemory panics if children is empty.
func NewSequenceMemory(description string, children ...Node) *SequenceMemory {
	requireChildren(TypeSequenceMemory, description, children)
	return &SequenceMemory{Base: NewBase(TypeSequenceMemory, description, children...)}
}

func (s *SequenceMemory) Tick() Status {
	for ; s.cursor < len(s.children); s.cursor++ {
		if status := s.children[s.cursor].Tick(); status != Success {
			return status
		}
	}
	s.Reset()
	return Success
}

// Reset rewinds the cursor to the first child and resets every child.
func (s *SequenceMemory) Reset() {
	s.cursor = 0
	s.Base.Reset()
}

// Cursor returns the index of the child the next tick starts from.
func (s *SequenceMemory) Cursor() int { return s.cursor }
