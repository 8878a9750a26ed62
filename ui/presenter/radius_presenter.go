package presenter

import (
	"math"
	"strconv"
	"strings"

	"log/slog"

	"github.com/soocke/pixel-round-go/ui/model"
)

// RadiusControls is the pair of widgets mirroring the radius value.
type RadiusControls interface {
	SetSlider(int)
	SetField(string)
}

// RadiusPresenter keeps the slider, the numeric field and the radius model
// in agreement. The slider covers 0 to 300; the field accepts any
// non-negative integer and whatever fails to parse becomes 0.
type RadiusPresenter struct {
	Model  *model.RadiusModel
	View   RadiusControls
	logger *slog.Logger
}

// NewRadiusPresenter constructs a radius presenter.
func NewRadiusPresenter(m *model.RadiusModel, view RadiusControls, logger *slog.Logger) *RadiusPresenter {
	return &RadiusPresenter{Model: m, View: view, logger: logger}
}

// Init pushes the model value into both widgets.
func (p *RadiusPresenter) Init() {
	if p == nil || p.Model == nil {
		return
	}
	p.push(p.Model.Value())
}

// OnSlider handles a slider move. Tk reports scale positions as floats
// ("37.0"), so the raw string is parsed as one and truncated.
func (p *RadiusPresenter) OnSlider(raw string) {
	if p == nil || p.Model == nil {
		return
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		if p.logger != nil {
			p.logger.Debug("unparseable slider position", "raw", raw)
		}
		return
	}
	v := int(f)
	p.Model.Set(v)
	if p.View != nil {
		p.View.SetField(strconv.Itoa(p.Model.Value()))
	}
}

// OnFieldEdit handles a committed edit of the numeric field. Garbage and
// negative input collapse to 0; values past the slider range are kept, the
// slider just pegs at its maximum.
func (p *RadiusPresenter) OnFieldEdit(raw string) {
	if p == nil || p.Model == nil {
		return
	}
	v := parseRadius(raw)
	p.Model.Set(v)
	p.push(p.Model.Value())
}

func (p *RadiusPresenter) push(v int) {
	if p.View == nil {
		return
	}
	p.View.SetSlider(v)
	p.View.SetField(strconv.Itoa(v))
}

func parseRadius(raw string) int {
	s := strings.TrimSpace(raw)
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	// Floats are truncated. Conversion of an out-of-range float to int is
	// implementation defined, so the value is bounded first.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}
