package view

import (
	"fmt"
	"image"
	"log/slog"
	"strings"

	"github.com/soocke/pixel-round-go/capture"
	"github.com/soocke/pixel-round-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

// RegionOverlay manages the movable frame window used to pick the screen
// rectangle for a region capture. The chosen rectangle is handed to the
// confirm callback; nothing is persisted.
type RegionOverlay interface {
	OpenOrFocus()
	Dismiss()
}

type regionOverlay struct {
	logger   *slog.Logger
	onSelect func(image.Rectangle)
	win      *ToplevelWidget
}

// NewRegionOverlay creates the overlay manager. onSelect runs when the user
// confirms a rectangle.
func NewRegionOverlay(onSelect func(image.Rectangle), logger *slog.Logger) RegionOverlay {
	return &regionOverlay{logger: logger, onSelect: onSelect}
}

func (v *regionOverlay) OpenOrFocus() {
	if v.win != nil {
		WmGeometry(v.win.Window)
		return
	}
	win := App.Toplevel(Borderwidth(2), Background(theme.TransparentKey))
	win.WmTitle("Capture Region")
	v.win = win
	screenW, screenH := screenSize()
	initW, initH := max(1, screenW/2), max(1, screenH/2)
	x, y := (screenW-initW)/2, (screenH-initH)/2
	WmGeometry(win.Window, fmt.Sprintf("%dx%d+%d+%d", initW, initH, x, y))
	WmAttributes(win.Window, "-topmost", 1)
	WmAttributes(win.Window, "-toolwindow", true)
	WmAttributes(win.Window, "-transparentcolor", theme.TransparentKey)
	GridRowConfigure(win.Window, 0, Weight(1))
	GridColumnConfigure(win.Window, 0, Weight(0))
	GridColumnConfigure(win.Window, 1, Weight(1))
	GridColumnConfigure(win.Window, 2, Weight(0))
	left := win.Frame(Width(4), Background(theme.OverlayEdge))
	Grid(left, Row(0), Column(0), Sticky("ns"))
	center := win.Frame(Background(theme.TransparentKey))
	Grid(center, Row(0), Column(1), Sticky("nsew"))
	right := win.Frame(Width(4), Background(theme.OverlayEdge))
	Grid(right, Row(0), Column(2), Sticky("ns"))
	controls := win.Frame()
	Grid(controls, Row(1), Column(0), Columnspan(3), Sticky("we"))
	confirm := win.Button(Txt("Capture [Enter]"), Command(v.confirm))
	Grid(confirm, In(controls), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	cancel := win.Button(Txt("Cancel [Esc]"), Command(v.Dismiss))
	Grid(cancel, In(controls), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	Bind(win, "<Return>", Command(v.confirm))
	Bind(win, "<Escape>", Command(v.Dismiss))
}

func (v *regionOverlay) confirm() {
	if v.win == nil {
		return
	}
	geom := WmGeometry(v.win.Window)
	rect, ok := parseGeometry(geom)
	v.Dismiss()
	if !ok {
		if v.logger != nil {
			v.logger.Warn("unparseable overlay geometry", "geometry", geom)
		}
		return
	}
	if v.onSelect != nil {
		v.onSelect(rect)
	}
}

// Dismiss closes the overlay window if open.
func (v *regionOverlay) Dismiss() {
	if v.win != nil {
		Destroy(v.win)
		v.win = nil
	}
}

// screenSize queries the display, falling back to a common resolution when
// the query fails.
func screenSize() (int, int) {
	if b, err := capture.ScreenBounds(); err == nil && !b.Empty() {
		return b.Dx(), b.Dy()
	}
	return 1920, 1080
}

// parseGeometry converts a Tk "WIDTHxHEIGHT+X+Y" geometry string into the
// screen rectangle it describes. Offsets may be negative on multi-monitor
// setups.
func parseGeometry(g string) (image.Rectangle, bool) {
	var w, h, x, y int
	n, err := fmt.Sscanf(strings.TrimSpace(g), "%dx%d+%d+%d", &w, &h, &x, &y)
	if err != nil || n != 4 || w <= 0 || h <= 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(x, y, x+w, y+h), true
}
