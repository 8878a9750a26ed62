package grab

import (
	"image"
	"log/slog"
	"sync"
	"testing"
	"time"
)

// Functional transition tests.

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// waitForState waits up to timeout for the FSM to reach expected state.
func waitForState(t *testing.T, f *FSM, expected State, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if f.Current() == expected {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timeout waiting for state %v (got %v)", expected, f.Current())
}

type transitionRecorder struct {
	mu  sync.Mutex
	seq []State
}

// listener records transitions.
func (r *transitionRecorder) listener(prev, next State) {
	r.mu.Lock()
	r.seq = append(r.seq, next)
	r.mu.Unlock()
}

func (r *transitionRecorder) states() []State {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := make([]State, len(r.seq))
	copy(s, r.seq)
	return s
}

func TestFSM_ArmFiresAfterDelay(t *testing.T) {
	f := NewFSM(discardLogger, 50*time.Millisecond)
	defer f.Close()
	f.Arm(Target{})
	waitForState(t, f, StateArmed, 200*time.Millisecond)
	// Before the deadline a tick must not fire the grab.
	f.Tick(time.Now())
	time.Sleep(10 * time.Millisecond)
	if f.Current() != StateArmed {
		t.Fatalf("fired before deadline: %v", f.Current())
	}
	// After the deadline the next tick transitions to grabbing.
	time.Sleep(60 * time.Millisecond)
	f.Tick(time.Now())
	waitForState(t, f, StateGrabbing, 200*time.Millisecond)
	f.Done()
	waitForState(t, f, StateIdle, 200*time.Millisecond)
}

func TestFSM_ZeroDelayFiresOnNextTick(t *testing.T) {
	f := NewFSM(discardLogger, 0)
	defer f.Close()
	f.Arm(Target{})
	waitForState(t, f, StateArmed, 200*time.Millisecond)
	f.Tick(time.Now())
	waitForState(t, f, StateGrabbing, 200*time.Millisecond)
}

func TestFSM_CancelReturnsToIdle(t *testing.T) {
	f := NewFSM(discardLogger, time.Hour)
	defer f.Close()
	r := &transitionRecorder{}
	f.AddListener(r.listener)
	f.Arm(Target{})
	waitForState(t, f, StateArmed, 200*time.Millisecond)
	f.Cancel()
	waitForState(t, f, StateIdle, 200*time.Millisecond)
	seq := r.states()
	if len(seq) != 2 || seq[0] != StateArmed || seq[1] != StateIdle {
		t.Fatalf("unexpected transition sequence %v", seq)
	}
	if f.ArmedTarget().Region != nil {
		t.Fatalf("target not cleared on cancel")
	}
}

func TestFSM_ArmedTargetCarriesRegion(t *testing.T) {
	f := NewFSM(discardLogger, time.Hour)
	defer f.Close()
	region := image.Rect(10, 20, 110, 220)
	f.Arm(Target{Region: &region})
	waitForState(t, f, StateArmed, 200*time.Millisecond)
	got := f.ArmedTarget()
	if got.Region == nil || *got.Region != region {
		t.Fatalf("target region = %v, want %v", got.Region, region)
	}
}

func TestFSM_RemainingCountsDown(t *testing.T) {
	f := NewFSM(discardLogger, 500*time.Millisecond)
	defer f.Close()
	if f.Remaining(time.Now()) != 0 {
		t.Fatalf("remaining nonzero while idle")
	}
	f.Arm(Target{})
	waitForState(t, f, StateArmed, 200*time.Millisecond)
	r := f.Remaining(time.Now())
	if r <= 0 || r > 500*time.Millisecond {
		t.Fatalf("remaining = %v, want within (0, 500ms]", r)
	}
}

func TestFSM_SetDelayAppliesToNextArm(t *testing.T) {
	f := NewFSM(discardLogger, time.Hour)
	defer f.Close()
	// Events are processed in order, so the shortened delay is in effect
	// by the time the arm is handled.
	f.SetDelay(0)
	f.Arm(Target{})
	waitForState(t, f, StateArmed, 200*time.Millisecond)
	f.Tick(time.Now())
	waitForState(t, f, StateGrabbing, 200*time.Millisecond)
}

func TestFSM_InvalidEventNoTransition(t *testing.T) {
	f := NewFSM(discardLogger, time.Hour)
	defer f.Close()
	// Done while idle and cancel while idle are no-ops.
	f.Done()
	f.Cancel()
	time.Sleep(50 * time.Millisecond)
	if f.Current() != StateIdle {
		t.Fatalf("unexpected state %v", f.Current())
	}
	// Arm while armed does not restart the countdown.
	f.Arm(Target{})
	waitForState(t, f, StateArmed, 200*time.Millisecond)
	first := f.Remaining(time.Now())
	f.Arm(Target{})
	time.Sleep(50 * time.Millisecond)
	second := f.Remaining(time.Now())
	if second > first {
		t.Fatalf("re-arm extended the deadline: %v > %v", second, first)
	}
}
