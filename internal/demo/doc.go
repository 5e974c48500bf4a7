// Package demo contains small robot controllers used by the arbor command to
// exercise the engine: a pick-and-place cell and a battery-aware gripper.
package demo
