package view

import (
	"strings"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Slider range. The numeric field accepts values beyond the maximum; the
// slider then just rests at its right end.
const sliderMax = 300

// RadiusPanel is the slider plus numeric field pair controlling the corner
// radius.
type RadiusPanel interface {
	SetSlider(value int)
	SetField(text string)
}

type radiusPanel struct {
	scale   *TScaleWidget
	field   *TextWidget
	setting bool // programmatic scale writes re-fire its command
}

// NewRadiusPanel grids the radius row. onSlider receives the raw scale
// position on drags, onField the raw field text on Return or focus loss.
func NewRadiusPanel(row int, onSlider, onField func(raw string)) RadiusPanel {
	v := &radiusPanel{}
	panel := Frame()
	Grid(panel, Row(row), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	lbl := Label(Txt("Corner radius"), Anchor("w"))
	Grid(lbl, In(panel), Row(0), Column(0), Sticky("w"), Padx("0.2m"))
	v.scale = TScale(From(0), To(sliderMax), Orient("horizontal"), Length(320), Command(func() {
		if v.setting || onSlider == nil {
			return
		}
		onSlider(v.scale.Get())
	}))
	Grid(v.scale, In(panel), Row(0), Column(1), Sticky("we"), Padx("0.2m"))
	v.field = Text(Height(1), Width(6))
	Grid(v.field, In(panel), Row(0), Column(2), Sticky("w"), Padx("0.2m"))
	GridColumnConfigure(panel, 1, Weight(1))

	commit := func() {
		if onField != nil {
			onField(v.fieldText())
		}
	}
	// The Text class binding inserts the newline on the Return press, so the
	// commit runs on the release; the presenter echoes the canonical value
	// back through SetField, which leaves the field one line again.
	Bind(v.field, "<KeyRelease-Return>", Command(commit))
	Bind(v.field, "<FocusOut>", Command(commit))
	return v
}

func (v *radiusPanel) SetSlider(value int) {
	if v == nil || v.scale == nil {
		return
	}
	v.setting = true
	v.scale.Configure(Value(value))
	v.setting = false
}

func (v *radiusPanel) SetField(text string) {
	if v == nil || v.field == nil {
		return
	}
	v.field.Delete("1.0", END)
	v.field.Insert("1.0", text)
}

func (v *radiusPanel) fieldText() string {
	if v == nil || v.field == nil {
		return ""
	}
	return strings.Join(v.field.Get("1.0", END), "")
}
