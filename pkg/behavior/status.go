package behavior

import (
	"fmt"
	"strings"
)

// Status is the result of a single tick.
type Status int8

const (
	// Failure means the node finished without achieving its goal.
	Failure Status = iota
	// Success means the node finished and achieved its goal.
	Success
	// Running means the node needs further ticks.
	Running
)

// StatusOf converts a boolean outcome: true is Success, false is Failure.
func StatusOf(ok bool) Status {
	if ok {
		return Success
	}
	return Failure
}

// ParseStatus accepts the String form of a status, case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SUCCESS":
		return Success, nil
	case "FAILURE":
		return Failure, nil
	case "RUNNING":
		return Running, nil
	}
	return Failure, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Bool reports whether s is Success. Failure and Running are both false.
func (s Status) Bool() bool {
	return s == Success
}

// Valid reports whether s is one of Failure, Success or Running.
func (s Status) Valid() bool {
	return s == Failure || s == Success || s == Running
}

// Precedence ranks statuses for combining: Running outranks Failure, which
// outranks Success.
func (s Status) Precedence() int {
	switch s {
	case Running:
		return 2
	case Failure:
		return 1
	default:
		return 0
	}
}

// Compare orders a and b by Precedence, returning -1, 0 or +1.
func Compare(a, b Status) int {
	pa, pb := a.Precedence(), b.Precedence()
	switch {
	case pa < pb:
		return -1
	case pa > pb:
		return 1
	}
	return 0
}

// Combine returns the status with the highest precedence, or Success when
// statuses is empty.
func Combine(statuses ...Status) Status {
	result := Success
	for _, s := range statuses {
		if Compare(s, result) > 0 {
			result = s
		}
	}
	return result
}

func (s Status) String() string {
	switch s {
	case Failure:
		return "FAILURE"
	case Success:
		return "SUCCESS"
	case Running:
		return "RUNNING"
	default:
		return "UNKNOWN"
	}
}
