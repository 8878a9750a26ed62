package view

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Toolbar holds the action buttons along the top of the window plus the
// capture countdown readout.
type Toolbar interface {
	SetDownloadEnabled(enabled bool)
	SetRevealEnabled(enabled bool)
	SetCaptureEnabled(enabled bool)
	SetCountdown(text string)
}

// ToolbarCallbacks are invoked on button presses.
type ToolbarCallbacks struct {
	OnOpen     func()
	OnScreen   func()
	OnRegion   func()
	OnDownload func()
	OnReveal   func()
	OnSettings func()
}

type toolbar struct {
	screenBtn    *ButtonWidget
	regionBtn    *ButtonWidget
	downloadBtn  *ButtonWidget
	revealBtn    *ButtonWidget
	countdownLbl *LabelWidget
}

// NewToolbar grids the button row. Download and reveal start disabled; they
// are enabled once a document, respectively an export, exists.
func NewToolbar(row int, cb ToolbarCallbacks) Toolbar {
	v := &toolbar{}
	bar := Frame()
	Grid(bar, Row(row), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	openBtn := Button(Txt("Open..."), Command(cb.OnOpen))
	Grid(openBtn, In(bar), Row(0), Column(0), Sticky("w"), Padx("0.2m"), Pady("0.2m"))
	v.screenBtn = Button(Txt("Capture Screen"), Command(cb.OnScreen))
	Grid(v.screenBtn, In(bar), Row(0), Column(1), Sticky("w"), Padx("0.2m"), Pady("0.2m"))
	v.regionBtn = Button(Txt("Capture Region"), Command(cb.OnRegion))
	Grid(v.regionBtn, In(bar), Row(0), Column(2), Sticky("w"), Padx("0.2m"), Pady("0.2m"))
	v.countdownLbl = Label(Width(14))
	Grid(v.countdownLbl, In(bar), Row(0), Column(3), Sticky("w"), Padx("0.4m"))
	v.downloadBtn = Button(Txt("Download PNG"), Command(cb.OnDownload))
	Grid(v.downloadBtn, In(bar), Row(0), Column(4), Sticky("e"), Padx("0.2m"), Pady("0.2m"))
	v.revealBtn = Button(Txt("Show in Folder"), Command(cb.OnReveal))
	Grid(v.revealBtn, In(bar), Row(0), Column(5), Sticky("e"), Padx("0.2m"), Pady("0.2m"))
	settingsBtn := Button(Txt("Settings"), Command(cb.OnSettings))
	Grid(settingsBtn, In(bar), Row(0), Column(6), Sticky("e"), Padx("0.2m"), Pady("0.2m"))
	GridColumnConfigure(bar, 3, Weight(1))

	v.downloadBtn.Configure(State("disabled"))
	v.revealBtn.Configure(State("disabled"))
	return v
}

func (v *toolbar) SetDownloadEnabled(enabled bool) { setButtonState(v.downloadBtn, enabled) }
func (v *toolbar) SetRevealEnabled(enabled bool) { setButtonState(v.revealBtn, enabled) }

func (v *toolbar) SetCaptureEnabled(enabled bool) {
	setButtonState(v.screenBtn, enabled)
	setButtonState(v.regionBtn, enabled)
}

func (v *toolbar) SetCountdown(text string) {
	if v == nil || v.countdownLbl == nil {
		return
	}
	v.countdownLbl.Configure(Txt(text))
}

func setButtonState(b *ButtonWidget, enabled bool) {
	if b == nil {
		return
	}
	state := "disabled"
	if enabled {
		state = "normal"
	}
	b.Configure(State(state))
}
