// Package theme switches the ttk look between the light and dark azure
// variants and holds the few colors drawn outside the themed widget set.
package theme

import (
	"strings"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Overlay key colors. The center frame of the region overlay is painted in
// TransparentKey and the window's -transparentcolor attribute is set to the
// same value, so both must come from here.
const (
	TransparentKey = "#008080"
	OverlayEdge    = "#FFFFFF"
)

// Toplevel backgrounds for the two modes. The azure theme only restyles ttk
// widgets, so the root window is painted explicitly.
const (
	lightBg = "#f7f9fb"
	darkBg  = "#1c1c1c"
)

// Activate applies the named theme, "azure light" or "azure dark". Anything
// else falls back to light; theming is cosmetic and must never block startup.
func Activate(name string) {
	if strings.Contains(strings.ToLower(name), "dark") {
		_ = ActivateTheme("azure dark")
		App.Configure(Background(darkBg))
		return
	}
	_ = ActivateTheme("azure light")
	App.Configure(Background(lightBg))
}
