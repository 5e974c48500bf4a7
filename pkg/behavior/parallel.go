package behavior

// Parallel ticks every child on every tick, in order, without short-circuiting.
// The result is Running if any child is Running, otherwise Failure if any child
// failed, otherwise Success.
type Parallel struct {
	Base
	results []Status
}

// NewParallel panics if children is empty.
func NewParallel(description string, children ...Node) *Parallel {
	requireChildren(TypeParallel, description, children)
	return &Parallel{
		Base:    NewBase(TypeParallel, description, children...),
		results: make([]Status, len(children)),
	}
}

func (p *Parallel) Tick() Status {
	for i, child := range p.children {
		p.results[i] = child.Tick()
	}
	return Combine(p.results...)
}

// Skipper ticks children in order and returns the first status that is not
// Running. It returns Running only if every child is Running.
type Skipper struct {
	Base
}

// NewSkipper panics if children is empty.
func NewSkipper(description string, children ...Node) *Skipper {
	requireChildren(TypeSkipper, description, children)
	return &Skipper{Base: NewBase(TypeSkipper, description, children...)}
}

func (s *Skipper) Tick() Status {
	for _, child := range s.children {
		if status := child.Tick(); status != Running {
			return status
		}
	}
	return Running
}
