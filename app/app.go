package app

import (
	"fmt"
	"time"

	"log/slog"

	. "modernc.org/tk9.0"

	"github.com/soocke/pixel-round-go/config"
	"github.com/soocke/pixel-round-go/debug"
	"github.com/soocke/pixel-round-go/ui/presenter"
	"github.com/soocke/pixel-round-go/ui/theme"
	"github.com/soocke/pixel-round-go/ui/view"
)

const (
	tick = 100 * time.Millisecond

	telemetryInterval = 30 * time.Second
)

type app struct {
	cfg       *config.Config
	cfgPath   string
	logger    *slog.Logger
	container *AppContainer
	afterID   string
}

// NewApp prepares the root window. Widgets are created in Start.
func NewApp(title string, width, height int, cfg *config.Config, cfgPath string, logger *slog.Logger) *app {
	a := &app{cfg: cfg, cfgPath: cfgPath, logger: logger}
	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

// Start builds the component graph and the layout, loads the optional
// startup image and runs the Tk event loop until the window closes.
func (a *app) Start(initialPath string) {
	c := BuildContainer(a.cfg, a.logger, a.cfgPath)
	a.container = c

	c.RootView.Build(view.Callbacks{
		OnOpenPath:     c.LoadPresenter.OpenPath,
		OnArmScreen:    c.GrabPresenter.ArmScreen,
		OnArmRegion:    c.GrabPresenter.ArmRegion,
		OnCancelArm:    c.GrabPresenter.CancelArm,
		OnDownload:     c.ExportPresenter.Download,
		OnReveal:       c.ExportPresenter.RevealLast,
		OnRadiusSlider: c.RadiusPresenter.OnSlider,
		OnRadiusField:  c.RadiusPresenter.OnFieldEdit,
		OnSettingsSave: func() {
			// Presenters read cfg live; only the grab delay needs a push.
			c.FSM.SetDelay(time.Duration(a.cfg.CaptureDelaySeconds) * time.Second)
			theme.Activate(a.cfg.Theme)
			c.Flash.Show("Settings saved", 3*time.Second, time.Now())
		},
	})
	theme.Activate(a.cfg.Theme)
	c.RadiusPresenter.Init()

	if a.cfg.Debug {
		debug.StartTelemetry(telemetryInterval, a.logger)
	}

	c.Loop = presenter.NewLoop(c.GrabPresenter, c.LoadPresenter, c.PreviewPresenter, c.ExportPresenter, c.StatusPresenter, a.scheduleUpdate)

	if initialPath != "" {
		c.LoadPresenter.OpenPath(initialPath)
	}

	// Kick off the update loop.
	a.scheduleUpdate()

	App.Wait()
}

func (a *app) exitHandler() {
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	if a.container != nil {
		a.container.GrabPresenter.Close()
	}
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next tick using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() {
		// A tick already queued when the close handler runs still fires;
		// widget calls would panic against destroyed widgets.
		defer func() { _ = recover() }()
		a.container.Loop.Tick()
	})
}
