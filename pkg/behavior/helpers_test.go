package behavior_test

import "github.com/aretw0/arbor/pkg/behavior"

// probe is a condition whose result is controlled by the test and whose ticks are counted.
type probe struct {
	*behavior.Condition
	status behavior.Status
	ticks  int
}

func newProbe(description string, status behavior.Status) *probe {
	p := &probe{status: status}
	p.Condition = behavior.NewCheck(func() behavior.Status {
		p.ticks++
		return p.status
	}, description)
	return p
}

// counted wraps a fixed status in a condition that increments *counter on every tick.
func counted(counter *int, status behavior.Status) *behavior.Condition {
	return behavior.NewCheck(func() behavior.Status {
		*counter++
		return status
	}, status.String())
}
