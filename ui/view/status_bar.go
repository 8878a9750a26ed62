package view

import (
	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatusBar shows the document summary on the left and transient messages
// on the right.
type StatusBar interface {
	SetInfo(text string)
	SetFlash(text string)
}

type statusBar struct {
	infoLbl  *LabelWidget
	flashLbl *LabelWidget
}

// NewStatusBar creates the info and flash labels in a bar at the given row.
func NewStatusBar(row int) StatusBar {
	s := &statusBar{}
	bar := Frame()
	Grid(bar, Row(row), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	s.infoLbl = Label(Anchor("w"))
	Grid(s.infoLbl, In(bar), Row(0), Column(0), Sticky("w"), Padx("0.2m"))
	s.flashLbl = Label(Anchor("e"))
	Grid(s.flashLbl, In(bar), Row(0), Column(1), Sticky("e"), Padx("0.2m"))
	GridColumnConfigure(bar, 0, Weight(1))
	s.infoLbl.Configure(Txt("No image loaded"))
	return s
}

// SetInfo updates the document summary text.
func (s *statusBar) SetInfo(text string) {
	if s == nil || s.infoLbl == nil {
		return
	}
	s.infoLbl.Configure(Txt(text))
}

// SetFlash updates the transient message text, empty to clear.
func (s *statusBar) SetFlash(text string) {
	if s == nil || s.flashLbl == nil {
		return
	}
	s.flashLbl.Configure(Txt(text))
}
