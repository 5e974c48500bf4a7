package demo

import (
	"errors"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/pkg/behavior"
)

// LowBatteryThreshold is the charge at or below which the gripper refuses to move.
const LowBatteryThreshold = 20

// ErrLowBattery is reported by gripper actions when the battery is too low.
var ErrLowBattery = errors.New("battery too low")

// Gripper checks its battery, opens, approaches an object and closes on it.
type Gripper struct {
	tree *arbor.Tree

	battery    int
	open       bool
	approaches int
	grasps     int
}

// NewGripper builds the controller with the given battery percentage.
func NewGripper(battery int, opts ...arbor.Option) *Gripper {
	g := &Gripper{battery: battery}
	g.tree = arbor.New(g.build(), opts...)
	return g
}

func (g *Gripper) build() behavior.Node {
	return behavior.NewSequence("grasp",
		behavior.NewPredicate(g.CheckBattery, "Check Battery"),
		behavior.NewAction(g.OpenGripper, "Open Gripper"),
		behavior.NewDo(func() { g.approaches++ }, "Approach Object"),
		behavior.NewAction(func() error {
			if err := g.CloseGripper(); err != nil {
				return err
			}
			g.grasps++
			return nil
		}, "Close Gripper"),
	)
}

// CheckBattery reports whether the battery is above LowBatteryThreshold.
func (g *Gripper) CheckBattery() bool {
	return g.battery > LowBatteryThreshold
}

// OpenGripper opens the jaws if the battery allows it.
func (g *Gripper) OpenGripper() error {
	if !g.CheckBattery() {
		return ErrLowBattery
	}
	g.open = true
	return nil
}

// CloseGripper closes the jaws if the battery allows it.
func (g *Gripper) CloseGripper() error {
	if !g.CheckBattery() {
		return ErrLowBattery
	}
	g.open = false
	return nil
}

// SetBatteryLevel sets the charge, clamped to 0..100.
func (g *Gripper) SetBatteryLevel(level int) {
	g.battery = min(max(level, 0), 100)
}

// BatteryLevel returns the current charge.
func (g *Gripper) BatteryLevel() int { return g.battery }

// Open reports whether the jaws are open.
func (g *Gripper) Open() bool { return g.open }

// Approaches returns how many times the gripper approached an object.
func (g *Gripper) Approaches() int { return g.approaches }

// Grasps returns how many grasps completed.
func (g *Gripper) Grasps() int { return g.grasps }

// Tree returns the controller's tree.
func (g *Gripper) Tree() *arbor.Tree { return g.tree }

// Run ticks the tree once.
func (g *Gripper) Run() behavior.Status { return g.tree.Run() }
