package view

import (
	"image"
	"log/slog"

	"github.com/soocke/pixel-round-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Toolbar  Toolbar
	Preview  PreviewPanel
	Radius   RadiusPanel
	Status   StatusBar
	Settings SettingsPanel
	Overlay  RegionOverlay
	Dialogs  FileDialogs
}

// UI abstracts the view operations needed by presenters, decoupling them
// from the concrete RootView implementation.
type UI interface {
	SetDownloadEnabled(enabled bool)
	SetRevealEnabled(enabled bool)
	SetCaptureEnabled(enabled bool)
	SetCountdown(text string)
	UpdatePreview(png []byte)
	ShowPlaceholder()
	SetSlider(value int)
	SetField(text string)
	SetInfo(text string)
	SetFlash(text string)
	AskSavePath(defaultName string) string
	WithdrawWindow()
	RestoreWindow()
}

// Callbacks are the user actions the root view reports. The view resolves
// dialogs and the region overlay itself; presenters only see outcomes.
type Callbacks struct {
	OnOpenPath     func(path string)
	OnArmScreen    func()
	OnArmRegion    func(region image.Rectangle)
	OnCancelArm    func()
	OnDownload     func()
	OnReveal       func()
	OnRadiusSlider func(raw string)
	OnRadiusField  func(raw string)
	OnSettingsSave func()
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout: toolbar, preview, radius row, status bar.
func (rv *RootView) Build(cb Callbacks) {
	if rv == nil {
		return
	}
	rv.Dialogs = NewFileDialogs()
	rv.Overlay = NewRegionOverlay(func(r image.Rectangle) {
		if cb.OnArmRegion != nil {
			cb.OnArmRegion(r)
		}
	}, rv.logger)
	rv.Settings = NewSettingsPanel(rv.cfg, rv.cfgPath, cb.OnSettingsSave, rv.logger)

	openPicker := func() {
		if path := rv.Dialogs.PickImage(); path != "" && cb.OnOpenPath != nil {
			cb.OnOpenPath(path)
		}
	}
	rv.Toolbar = NewToolbar(0, ToolbarCallbacks{
		OnOpen:     openPicker,
		OnScreen:   cb.OnArmScreen,
		OnRegion:   rv.Overlay.OpenOrFocus,
		OnDownload: cb.OnDownload,
		OnReveal:   cb.OnReveal,
		OnSettings: rv.Settings.OpenOrFocus,
	})
	rv.Preview = NewPreviewPanel(1, openPicker)
	rv.Radius = NewRadiusPanel(2, cb.OnRadiusSlider, cb.OnRadiusField)
	rv.Status = NewStatusBar(3)
	GridRowConfigure(App, 1, Weight(1))
	GridColumnConfigure(App, 0, Weight(1))
	if cb.OnCancelArm != nil {
		Bind(App, "<Escape>", Command(cb.OnCancelArm))
	}
}

// SetDownloadEnabled toggles the download button.
func (rv *RootView) SetDownloadEnabled(enabled bool) {
	if rv != nil && rv.Toolbar != nil {
		rv.Toolbar.SetDownloadEnabled(enabled)
	}
}

// SetRevealEnabled toggles the show-in-folder button.
func (rv *RootView) SetRevealEnabled(enabled bool) {
	if rv != nil && rv.Toolbar != nil {
		rv.Toolbar.SetRevealEnabled(enabled)
	}
}

// SetCaptureEnabled toggles both capture buttons.
func (rv *RootView) SetCaptureEnabled(enabled bool) {
	if rv != nil && rv.Toolbar != nil {
		rv.Toolbar.SetCaptureEnabled(enabled)
	}
}

// SetCountdown updates the capture countdown readout.
func (rv *RootView) SetCountdown(text string) {
	if rv != nil && rv.Toolbar != nil {
		rv.Toolbar.SetCountdown(text)
	}
}

// UpdatePreview proxies a rendered frame to the preview panel.
func (rv *RootView) UpdatePreview(png []byte) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.UpdatePreview(png)
	}
}

// ShowPlaceholder puts the drop prompt back into the preview panel.
func (rv *RootView) ShowPlaceholder() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.ShowPlaceholder()
	}
}

// SetSlider moves the radius slider.
func (rv *RootView) SetSlider(value int) {
	if rv != nil && rv.Radius != nil {
		rv.Radius.SetSlider(value)
	}
}

// SetField rewrites the radius field text.
func (rv *RootView) SetField(text string) {
	if rv != nil && rv.Radius != nil {
		rv.Radius.SetField(text)
	}
}

// SetInfo updates the status bar summary.
func (rv *RootView) SetInfo(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetInfo(text)
	}
}

// SetFlash updates the status bar flash message.
func (rv *RootView) SetFlash(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetFlash(text)
	}
}

// AskSavePath opens the save dialog seeded with the standard export name.
func (rv *RootView) AskSavePath(defaultName string) string {
	if rv == nil || rv.Dialogs == nil {
		return ""
	}
	dir := ""
	if rv.cfg != nil {
		dir = rv.cfg.ExportDir
	}
	return rv.Dialogs.SaveAs(dir, defaultName)
}

// WithdrawWindow hides the application window for the screen grab.
func (rv *RootView) WithdrawWindow() {
	if rv == nil {
		return
	}
	if rv.Overlay != nil {
		rv.Overlay.Dismiss()
	}
	WmWithdraw(App)
}

// RestoreWindow brings the application window back after the grab.
func (rv *RootView) RestoreWindow() {
	if rv == nil {
		return
	}
	WmDeiconify(App)
}
