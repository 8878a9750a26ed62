package grab

import (
	"image"
	"time"
)

// State enumerates finite states of the screen grab cycle.
type State int

const (
	StateIdle State = iota
	StateArmed
	StateGrabbing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateGrabbing:
		return "grabbing"
	default:
		return "unknown"
	}
}

// Target describes what to capture once the arm delay elapses. A nil Region
// means the full screen.
type Target struct {
	Region *image.Rectangle
}

// StateListener is called on each successful state transition. Listeners run
// on the FSM goroutine and must not touch UI directly.
type StateListener func(prev, next State)

// Interface slices for consumers (presenters).
type StateSource interface {
	Current() State
	Remaining(now time.Time) time.Duration
}
type Ops interface {
	Arm(t Target)
	Cancel()
	Done()
}
type Lifecycle interface{ Close() }

// Contract aggregate for DI.
type Contract interface {
	StateSource
	Ops
	Lifecycle
	AddListener(StateListener)
	Tick(now time.Time)
	ArmedTarget() Target
	SetDelay(d time.Duration)
}
