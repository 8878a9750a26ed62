package grab

import (
	"log/slog"
	"runtime/debug"
	"sync/atomic"
	"time"
)

// FSM sequences screen grabs: Idle until armed, Armed while the capture
// delay counts down, Grabbing while the presenter performs the actual
// capture, then back to Idle. It is an actor: events are processed on its
// internal loop goroutine and the UI-facing accessors read atomics, so no
// caller ever blocks on the loop.
type FSM struct {
	logger     *slog.Logger
	delay      time.Duration
	state      atomic.Int32
	deadlineNS atomic.Int64
	target     atomic.Pointer[Target]
	events     chan interface{}
	listeners  []StateListener
	closed     atomic.Bool
}

// NewFSM constructs the machine and starts its event loop. delay is the time
// between arming and the grab firing; zero fires on the next tick.
func NewFSM(logger *slog.Logger, delay time.Duration) *FSM {
	if delay < 0 {
		delay = 0
	}
	f := &FSM{logger: logger, delay: delay, events: make(chan interface{}, 64)}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				if logger != nil {
					logger.Error("grab fsm panic", "error", r, "stack", stack)
				}
			}
		}()
		f.loop()
	}()
	return f
}

func (f *FSM) loop() {
	for ev := range f.events {
		switch e := ev.(type) {
		case evtAddListener:
			f.listeners = append(f.listeners, e.l)
		case evtArm:
			if f.current() == StateIdle {
				t := e.target
				f.target.Store(&t)
				f.deadlineNS.Store(time.Now().Add(f.delay).UnixNano())
				f.transition(StateArmed)
			}
		case evtCancel:
			if f.current() == StateArmed {
				f.deadlineNS.Store(0)
				f.target.Store(nil)
				f.transition(StateIdle)
			}
		case evtSetDelay:
			d := e.d
			if d < 0 {
				d = 0
			}
			f.delay = d
		case evtTick:
			f.handleTick(e.now)
		case evtDone:
			if f.current() == StateGrabbing {
				f.target.Store(nil)
				f.transition(StateIdle)
			}
		}
	}
}

type (
	evtArm         struct{ target Target }
	evtCancel      struct{}
	evtTick        struct{ now time.Time }
	evtDone        struct{}
	evtSetDelay    struct{ d time.Duration }
	evtAddListener struct{ l StateListener }
)

func (f *FSM) current() State { return State(f.state.Load()) }

func (f *FSM) transition(next State) {
	prev := f.current()
	if prev == next {
		return
	}
	f.state.Store(int32(next))
	if f.logger != nil {
		f.logger.Debug("grab state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range f.listeners {
		l(prev, next)
	}
}

func (f *FSM) handleTick(now time.Time) {
	if f.current() != StateArmed {
		return
	}
	dl := f.deadlineNS.Load()
	if dl != 0 && !now.Before(time.Unix(0, dl)) {
		f.transition(StateGrabbing)
	}
}

func (f *FSM) send(ev interface{}) {
	if f.closed.Load() {
		return
	}
	f.events <- ev
}

// Public API implements Contract.
func (f *FSM) AddListener(l StateListener) { f.send(evtAddListener{l: l}) }
func (f *FSM) Arm(t Target) { f.send(evtArm{target: t}) }
func (f *FSM) Cancel() { f.send(evtCancel{}) }
func (f *FSM) Done() { f.send(evtDone{}) }
func (f *FSM) Tick(now time.Time) { f.send(evtTick{now: now}) }

// SetDelay changes the arm delay for subsequent Arm calls. Armed deadlines
// already set are unaffected.
func (f *FSM) SetDelay(d time.Duration) { f.send(evtSetDelay{d: d}) }

// Current returns the present grab state.
func (f *FSM) Current() State { return f.current() }

// Remaining reports how much of the arm delay is left; zero when not armed.
func (f *FSM) Remaining(now time.Time) time.Duration {
	if f.current() != StateArmed {
		return 0
	}
	dl := f.deadlineNS.Load()
	if dl == 0 {
		return 0
	}
	d := time.Unix(0, dl).Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// ArmedTarget returns the target recorded by the latest Arm. The zero Target
// (full screen) is returned when nothing is armed.
func (f *FSM) ArmedTarget() Target {
	if t := f.target.Load(); t != nil {
		return *t
	}
	return Target{}
}

// Close stops the event loop. Events sent after Close are ignored.
func (f *FSM) Close() {
	if f.closed.CompareAndSwap(false, true) {
		close(f.events)
	}
}

// Ensure contract satisfaction
var _ Contract = (*FSM)(nil)
