package presenter

import (
	"fmt"
	"image"
	"math"
	"runtime/debug"
	"sync"
	"time"

	"log/slog"

	"github.com/soocke/pixel-round-go/domain/grab"
)

// Grabber takes the actual screenshots.
type Grabber interface {
	Grab() (*image.RGBA, error)
	GrabRegion(area image.Rectangle) (*image.RGBA, error)
}

// GrabView is the UI surface the capture flow drives.
type GrabView interface {
	SetCountdown(text string)
	SetCaptureEnabled(bool)
	WithdrawWindow()
	RestoreWindow()
}

// LoadSink accepts a finished capture as the new document.
type LoadSink interface {
	ApplyImage(img image.Image, name string)
}

type grabResult struct {
	img    *image.RGBA
	err    error
	region bool
}

// GrabPresenter drives screen captures through the countdown machine. State
// transitions arrive on the machine's goroutine and are queued; the queue,
// the countdown label and grab completions are all serviced on the UI tick.
// The window is hidden right before the shot and restored right after.
type GrabPresenter struct {
	FSM    grab.Contract
	Screen Grabber
	View   GrabView
	Loader LoadSink
	logger *slog.Logger

	mu      sync.Mutex
	pending []grab.State

	inFlight      bool
	settle        time.Duration
	lastCountdown string
	resultCh      chan grabResult
}

// NewGrabPresenter constructs a grab presenter and subscribes it to the
// machine's transitions.
func NewGrabPresenter(fsm grab.Contract, screen Grabber, view GrabView, loader LoadSink, logger *slog.Logger) *GrabPresenter {
	p := &GrabPresenter{
		FSM:      fsm,
		Screen:   screen,
		View:     view,
		Loader:   loader,
		logger:   logger,
		settle:   250 * time.Millisecond,
		resultCh: make(chan grabResult, 1),
	}
	if fsm != nil {
		fsm.AddListener(p.onState)
	}
	return p
}

// ArmScreen starts the countdown for a full-screen capture.
func (p *GrabPresenter) ArmScreen() {
	if p == nil || p.FSM == nil {
		return
	}
	p.FSM.Arm(grab.Target{})
}

// ArmRegion starts the countdown for a capture of the given screen region.
func (p *GrabPresenter) ArmRegion(region image.Rectangle) {
	if p == nil || p.FSM == nil {
		return
	}
	r := region
	p.FSM.Arm(grab.Target{Region: &r})
}

// CancelArm aborts a pending countdown.
func (p *GrabPresenter) CancelArm() {
	if p == nil || p.FSM == nil {
		return
	}
	p.FSM.Cancel()
}

// Tick advances the countdown machine and services its fallout.
func (p *GrabPresenter) Tick(now time.Time) {
	if p == nil || p.FSM == nil {
		return
	}
	p.FSM.Tick(now)
	for _, st := range p.takePending() {
		p.applyState(st)
	}
	p.updateCountdown(now)
	for {
		select {
		case res := <-p.resultCh:
			p.handleGrab(res)
		default:
			return
		}
	}
}

// Close shuts the countdown machine down.
func (p *GrabPresenter) Close() {
	if p == nil || p.FSM == nil {
		return
	}
	p.FSM.Close()
}

func (p *GrabPresenter) onState(prev, next grab.State) {
	p.mu.Lock()
	p.pending = append(p.pending, next)
	p.mu.Unlock()
}

func (p *GrabPresenter) takePending() []grab.State {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.pending) == 0 {
		return nil
	}
	out := p.pending
	p.pending = nil
	return out
}

func (p *GrabPresenter) applyState(st grab.State) {
	switch st {
	case grab.StateArmed:
		if p.View != nil {
			p.View.SetCaptureEnabled(false)
		}
	case grab.StateGrabbing:
		p.beginGrab()
	case grab.StateIdle:
		if p.View != nil {
			p.View.SetCaptureEnabled(true)
		}
	}
}

func (p *GrabPresenter) updateCountdown(now time.Time) {
	if p.View == nil {
		return
	}
	var text string
	switch p.FSM.Current() {
	case grab.StateArmed:
		secs := int(math.Ceil(p.FSM.Remaining(now).Seconds()))
		if secs < 1 {
			secs = 1
		}
		text = fmt.Sprintf("Capturing in %ds", secs)
	case grab.StateGrabbing:
		text = "Capturing..."
	}
	if text == p.lastCountdown {
		return
	}
	p.View.SetCountdown(text)
	p.lastCountdown = text
}

func (p *GrabPresenter) beginGrab() {
	if p.inFlight {
		return
	}
	p.inFlight = true
	target := p.FSM.ArmedTarget()
	if p.View != nil {
		p.View.WithdrawWindow()
	}
	go p.grabOnce(target)
}

// grabOnce runs off the UI thread. The short sleep gives the window
// manager time to actually unmap the withdrawn window before the shot.
func (p *GrabPresenter) grabOnce(target grab.Target) {
	defer func() {
		if r := recover(); r != nil {
			if p.logger != nil {
				p.logger.Error("capture panicked", "error", r, "stack", string(debug.Stack()))
			}
			p.deliver(grabResult{err: fmt.Errorf("capture panicked: %v", r)})
		}
	}()
	time.Sleep(p.settle)
	var res grabResult
	if p.Screen == nil {
		res.err = fmt.Errorf("no screen grabber configured")
		p.deliver(res)
		return
	}
	if target.Region != nil {
		res.region = true
		res.img, res.err = p.Screen.GrabRegion(*target.Region)
	} else {
		res.img, res.err = p.Screen.Grab()
	}
	p.deliver(res)
}

func (p *GrabPresenter) handleGrab(res grabResult) {
	p.inFlight = false
	if p.View != nil {
		p.View.RestoreWindow()
	}
	p.FSM.Done()
	if res.err != nil {
		if p.logger != nil {
			p.logger.Warn("capture failed", "error", res.err, "region", res.region)
		}
		return
	}
	name := "screen capture"
	if res.region {
		name = "region capture"
	}
	if p.Loader != nil {
		p.Loader.ApplyImage(res.img, name)
	}
}

func (p *GrabPresenter) deliver(res grabResult) {
	select {
	case p.resultCh <- res:
	default:
		select {
		case <-p.resultCh:
		default:
		}
		select {
		case p.resultCh <- res:
		default:
		}
	}
}
