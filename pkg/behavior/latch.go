package behavior

import "fmt"

// Latch evaluates its child once and keeps returning that result until it is
// released by the action returned from Unlatcher.
type Latch struct {
	Base
	initial bool
	latched bool
	last    Status
}

// NewLatch returns an unlatched Latch around child.
func NewLatch(child Node) *Latch {
	return NewLatchWithState(child, false)
}

// NewLatchWithState returns a Latch that starts latched when latched is true,
// in which case it reports Failure until first released.
func NewLatchWithState(child Node, latched bool) *Latch {
	if child == nil {
		panic(fmt.Errorf("%s: %w", TypeLatch, ErrNilChild))
	}
	return &Latch{
		Base:    NewBase(TypeLatch, "Latching "+child.Description(), child),
		initial: latched,
		latched: latched,
		last:    Failure,
	}
}

func (l *Latch) Tick() Status {
	if !l.latched {
		l.last = l.children[0].Tick()
		l.latched = true
	}
	return l.last
}

// Latched reports whether the next tick will return the cached result.
func (l *Latch) Latched() bool { return l.latched }

// Unlatch releases the latch so the next tick evaluates the child again.
func (l *Latch) Unlatch() { l.latched = false }

// Unlatcher returns a new Action that releases the latch when ticked. The
// action is not a child of the latch; place it wherever the release should
// happen.
func (l *Latch) Unlatcher() *Action {
	return NewDo(l.Unlatch, "Unlatching "+l.Description())
}

// Reset restores the initial latch state, forgets the cached result and resets
// the child.
func (l *Latch) Reset() {
	l.latched = l.initial
	l.last = Failure
	l.Base.Reset()
}
