package demo

import (
	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/pkg/behavior"
)

// Position is a target in the robot's workspace.
type Position struct {
	X, Y, Z float64
}

// Reachable reports whether every coordinate is set.
func (p Position) Reachable() bool {
	return p.X != 0 && p.Y != 0 && p.Z != 0
}

// Robot is the hardware the pick-and-place controller commands.
type Robot interface {
	Initialize() error
	// Pick reports whether the object is now held.
	Pick(Position) (bool, error)
	// Place reports whether the object is now at its destination.
	Place(Position) (bool, error)
}

// SimRobot is a Robot that succeeds whenever the target is reachable.
type SimRobot struct{}

func (SimRobot) Initialize() error { return nil }

func (SimRobot) Pick(p Position) (bool, error) { return p.Reachable(), nil }

func (SimRobot) Place(p Position) (bool, error) { return p.Reachable(), nil }

// PickAndPlace initializes a robot once, then picks an object and places it.
// Progress between pick and place is remembered across ticks.
type PickAndPlace struct {
	robot Robot
	tree  *arbor.Tree

	initialized bool
	picked      bool
	placed      bool
	pick, place Position
}

// NewPickAndPlace builds the controller and its tree.
func NewPickAndPlace(robot Robot, opts ...arbor.Option) *PickAndPlace {
	p := &PickAndPlace{robot: robot}
	p.tree = arbor.New(p.build(), opts...)
	return p
}

func (p *PickAndPlace) build() behavior.Node {
	isInitialized := behavior.NewPredicate(func() bool { return p.initialized }, "Check Robot Initialized")
	initialize := behavior.NewAction(func() error {
		if err := p.robot.Initialize(); err != nil {
			return err
		}
		p.initialized = true
		return nil
	}, "Initialize Robot Action")

	pickObject := behavior.NewAction(func() error {
		ok, err := p.robot.Pick(p.pick)
		p.picked = ok
		return err
	}, "Pick Object Action")
	placeObject := behavior.NewAction(func() error {
		ok, err := p.robot.Place(p.place)
		p.placed = ok
		return err
	}, "Place Object Action")

	picked := func() *behavior.Condition {
		return behavior.NewPredicate(func() bool { return p.picked }, "Check Pick Successful")
	}
	placed := func() *behavior.Condition {
		return behavior.NewPredicate(func() bool { return p.placed }, "Check Place Successful")
	}

	return behavior.NewSequence("pick and place",
		behavior.NewFallback("ensure initialized", isInitialized, initialize),
		behavior.NewSequenceMemory("transfer",
			behavior.NewFallback("ensure picked",
				picked(),
				behavior.NewSequence("pick", pickObject, picked()),
			),
			behavior.NewFallback("ensure placed",
				placed(),
				behavior.NewSequence("place", placeObject, placed()),
			),
		),
	)
}

// SetPickPosition sets where the object is.
func (p *PickAndPlace) SetPickPosition(pos Position) { p.pick = pos }

// SetPlacePosition sets where the object goes.
func (p *PickAndPlace) SetPlacePosition(pos Position) { p.place = pos }

// Initialized reports whether the robot has been initialized.
func (p *PickAndPlace) Initialized() bool { return p.initialized }

// Picked reports whether the object is held.
func (p *PickAndPlace) Picked() bool { return p.picked }

// Placed reports whether the object reached its destination.
func (p *PickAndPlace) Placed() bool { return p.placed }

// Tree returns the controller's tree.
func (p *PickAndPlace) Tree() *arbor.Tree { return p.tree }

// Run ticks the tree once.
func (p *PickAndPlace) Run() behavior.Status { return p.tree.Run() }
