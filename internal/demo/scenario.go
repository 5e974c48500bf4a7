package demo

import (
	"fmt"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/config"
	"github.com/aretw0/arbor/pkg/behavior"
)

// Scenario is a demo controller plus the simulated operator that drives it.
type Scenario struct {
	Tree *arbor.Tree
	// OnTick runs after tick n with the tree's result.
	OnTick func(n uint64, status behavior.Status)
	// Summary describes the controller state.
	Summary func() string
}

// Build returns the scenario named in cfg.
func Build(cfg config.Demo, opts ...arbor.Option) (*Scenario, error) {
	switch cfg.Name {
	case config.DemoPickAndPlace:
		return pickAndPlace(cfg, opts...), nil
	case config.DemoGripper:
		return gripper(cfg, opts...), nil
	default:
		return nil, fmt.Errorf("unknown demo %q: %w", cfg.Name, config.ErrInvalid)
	}
}

func pickAndPlace(cfg config.Demo, opts ...arbor.Option) *Scenario {
	p := NewPickAndPlace(SimRobot{}, append([]arbor.Option{arbor.WithName(cfg.Name)}, opts...)...)
	return &Scenario{
		Tree: p.Tree(),
		OnTick: func(n uint64, _ behavior.Status) {
			if n == cfg.PickAfter {
				p.SetPickPosition(Position{X: 1, Y: 2, Z: 3})
			}
			if n == cfg.PlaceAfter {
				p.SetPlacePosition(Position{X: 4, Y: 5, Z: 6})
			}
		},
		Summary: func() string {
			return fmt.Sprintf("initialized=%t picked=%t placed=%t", p.Initialized(), p.Picked(), p.Placed())
		},
	}
}

func gripper(cfg config.Demo, opts ...arbor.Option) *Scenario {
	g := NewGripper(cfg.Battery, append([]arbor.Option{arbor.WithName(cfg.Name)}, opts...)...)
	return &Scenario{
		Tree: g.Tree(),
		OnTick: func(uint64, behavior.Status) {
			g.SetBatteryLevel(g.BatteryLevel() - cfg.BatteryDrain)
		},
		Summary: func() string {
			return fmt.Sprintf("battery=%d grasps=%d open=%t", g.BatteryLevel(), g.Grasps(), g.Open())
		},
	}
}
