package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters and invokes a scheduler callback.
// The zero value is usable (methods are nil-safe).
type Loop struct {
	Grab     *GrabPresenter
	Load     *LoadPresenter
	Preview  *PreviewPresenter
	Export   *ExportPresenter
	Status   *StatusPresenter
	Schedule func()
}

func NewLoop(grab *GrabPresenter, load *LoadPresenter, preview *PreviewPresenter, export *ExportPresenter, status *StatusPresenter, schedule func()) *Loop {
	return &Loop{Grab: grab, Load: load, Preview: preview, Export: export, Status: status, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	// Grab first so a capture finishing this tick is applied before the
	// preview and status presenters read the document.
	if l.Grab != nil {
		l.Grab.Tick(now)
	}
	if l.Load != nil {
		l.Load.Tick(now)
	}
	if l.Preview != nil {
		l.Preview.Tick(now)
	}
	if l.Export != nil {
		l.Export.Tick(now)
	}
	if l.Status != nil {
		l.Status.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
