package behavior

import "fmt"

// Action runs a callable and succeeds unless it fails. It never returns Running.
type Action struct {
	leaf
	fn func() error
}

// NewAction wraps fn. A non-nil error or a panic from fn yields Failure.
func NewAction(fn func() error, description string) *Action {
	if fn == nil {
		panic(fmt.Errorf("%s %q: %w", TypeAction, description, ErrNilFunc))
	}
	return &Action{
		leaf: leaf{Base: NewBase(TypeAction, description)},
		fn:   fn,
	}
}

// NewDo wraps a callable that cannot fail on its own; only a panic yields Failure.
func NewDo(fn func(), description string) *Action {
	if fn == nil {
		panic(fmt.Errorf("%s %q: %w", TypeAction, description, ErrNilFunc))
	}
	return NewAction(func() error {
		fn()
		return nil
	}, description)
}

// Tick runs the callable.
func (a *Action) Tick() (status Status) {
	defer func() {
		if r := recover(); r != nil {
			a.report(a, &LeafPanicError{Value: r})
			status = Failure
		}
	}()
	if err := a.fn(); err != nil {
		a.report(a, err)
		return Failure
	}
	return Success
}

// Condition forwards the status computed by a callable.
type Condition struct {
	leaf
	fn func() (Status, error)
}

// NewCondition wraps fn. An error, a panic, or a value that is not a valid
// Status yields Failure.
func NewCondition(fn func() (Status, error), description string) *Condition {
	if fn == nil {
		panic(fmt.Errorf("%s %q: %w", TypeCondition, description, ErrNilFunc))
	}
	return &Condition{
		leaf: leaf{Base: NewBase(TypeCondition, description)},
		fn:   fn,
	}
}

// NewCheck wraps a status callable that cannot fail on its own.
func NewCheck(fn func() Status, description string) *Condition {
	if fn == nil {
		panic(fmt.Errorf("%s %q: %w", TypeCondition, description, ErrNilFunc))
	}
	return NewCondition(func() (Status, error) {
		return fn(), nil
	}, description)
}

// NewPredicate wraps a boolean test: true is Success, false is Failure.
func NewPredicate(fn func() bool, description string) *Condition {
	if fn == nil {
		panic(fmt.Errorf("%s %q: %w", TypeCondition, description, ErrNilFunc))
	}
	return NewCondition(func() (Status, error) {
		return StatusOf(fn()), nil
	}, description)
}

// Tick evaluates the callable.
func (c *Condition) Tick() (status Status) {
	defer func() {
		if r := recover(); r != nil {
			c.report(c, &LeafPanicError{Value: r})
			status = Failure
		}
	}()
	s, err := c.fn()
	if err != nil {
		c.report(c, err)
		return Failure
	}
	if !s.Valid() {
		c.report(c, fmt.Errorf("%w: %d", ErrInvalidStatus, s))
		return Failure
	}
	return s
}
