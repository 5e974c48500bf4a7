package behavior

// Fallback ticks its children in order, starting from the first on every tick,
// and returns the first status that is not Failure. It fails only when every
// child fails within one tick.
type Fallback struct {
	Base
}

// NewFallback panics if children is empty.
func NewFallback(description string, children ...Node) *Fallback {
	requireChildren(TypeFallback, description, children)
	return &Fallback{Base: NewBase(TypeFallback, description, children...)}
}

func (f *Fallback) Tick() Status {
	for _, child := range f.children {
		if status := child.Tick(); status != Failure {
			return status
		}
	}
	return Failure
}

// FallbackMemory is a Fallback that resumes from the child that last returned
// Success or Running. When every child has failed it resets itself and its
// descendants before returning Failure.
type FallbackMemory struct {
	Base
	cursor int
}

// NewFallbackMemory panics if children is empty.
func NewFallbackMemory(description string, children ...Node) *FallbackMemory {
	requireChildren(TypeFallbackMemory, description, children)
	return &FallbackMemory{Base: NewBase(TypeFallbackMemory, description, children...)}
}

func (f *FallbackMemory) Tick() Status {
	for ; f.cursor < len(f.children); f.cursor++ {
		if status := f.children[f.cursor].Tick(); status != Failure {
			return status
		}
	}
	f.Reset()
	return Failure
}

// Reset rewinds the cursor to the first child and resets every child.
func (f *FallbackMemory) Reset() {
	f.cursor = 0
	f.Base.Reset()
}

// Cursor returns the index of the child the next tick starts from.
func (f *FallbackMemory) Cursor() int { return f.cursor }
