package presenter

import (
	"fmt"
	"strconv"
	"time"

	"github.com/soocke/pixel-round-go/domain/render"
	"github.com/soocke/pixel-round-go/ui/model"
)

// StatusDocument narrows what the status line needs from the document model.
type StatusDocument interface {
	Loaded() bool
	Size() (int, int)
	SourceName() string
	Format() string
}

// StatusView is the status bar at the bottom of the window.
type StatusView interface {
	SetInfo(text string)
	SetFlash(text string)
}

// StatusPresenter keeps the status bar in step with the document, the
// radius and the transient flash message.
type StatusPresenter struct {
	Model  StatusDocument
	Radius RadiusSource
	Flash  *model.FlashModel
	View   StatusView

	lastInfo  string
	lastFlash string
	pushedYet bool
}

// NewStatusPresenter constructs a status presenter.
func NewStatusPresenter(m StatusDocument, radius RadiusSource, flash *model.FlashModel, view StatusView) *StatusPresenter {
	return &StatusPresenter{Model: m, Radius: radius, Flash: flash, View: view}
}

// Tick expires the flash and pushes changed text to the bar.
func (p *StatusPresenter) Tick(now time.Time) {
	if p == nil || p.View == nil {
		return
	}
	p.Flash.OnTick(now)
	info := p.infoText()
	if info != p.lastInfo || !p.pushedYet {
		p.View.SetInfo(info)
		p.lastInfo = info
	}
	flash := p.Flash.Text()
	if flash != p.lastFlash || !p.pushedYet {
		p.View.SetFlash(flash)
		p.lastFlash = flash
	}
	p.pushedYet = true
}

func (p *StatusPresenter) infoText() string {
	if p.Model == nil || !p.Model.Loaded() {
		return "No image loaded"
	}
	w, h := p.Model.Size()
	r := 0
	if p.Radius != nil {
		r = p.Radius.Value()
	}
	radiusTxt := fmt.Sprintf("radius %d", r)
	if eff := render.EffectiveRadius(float64(r), w, h); eff < float64(r) {
		radiusTxt = fmt.Sprintf("radius %d (max %s)", r, formatRadius(eff))
	}
	return fmt.Sprintf("%s  %dx%d %s  %s", p.Model.SourceName(), w, h, p.Model.Format(), radiusTxt)
}

func formatRadius(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
