package view

import (
	"github.com/soocke/pixel-round-go/assets"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PreviewPanel shows the rendered preview frame, or the drop prompt while
// no image is loaded.
type PreviewPanel interface {
	UpdatePreview(png []byte)
	ShowPlaceholder()
}

type previewPanel struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo instance, deleted before each replacement
}

// NewPreviewPanel creates the preview label showing the drop prompt and
// grids it at the given row. Activating the panel (double click or Enter)
// runs onActivate, which the root view wires to the file picker.
func NewPreviewPanel(row int, onActivate func()) PreviewPanel {
	photo := NewPhoto(Data(assets.DropPromptPNG))
	label := Label(Image(photo), Borderwidth(1), Relief("sunken"), Takefocus(true))
	Grid(label, Row(row), Column(0), Sticky("nsew"), Padx("0.4m"), Pady("0.4m"))
	if onActivate != nil {
		// Labels never receive focus on their own, so a click takes it
		// explicitly; Takefocus above puts the label on the Tab ring. Both
		// make the Return binding live.
		Bind(label, "<1>", Command(func() { Focus(label) }))
		Bind(label, "<Double-1>", Command(onActivate))
		Bind(label, "<Return>", Command(onActivate))
	}
	return &previewPanel{label: label, prevPhoto: photo}
}

func (v *previewPanel) UpdatePreview(png []byte) {
	if v == nil || v.label == nil || len(png) == 0 {
		return
	}
	v.swapPhoto(png)
}

func (v *previewPanel) ShowPlaceholder() {
	if v == nil || v.label == nil {
		return
	}
	v.swapPhoto(assets.DropPromptPNG)
}

// swapPhoto replaces the label image, disposing the previous Tk photo so
// off-screen pixel data does not accumulate.
func (v *previewPanel) swapPhoto(png []byte) {
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(png))
	v.label.Configure(Image(v.prevPhoto))
}
