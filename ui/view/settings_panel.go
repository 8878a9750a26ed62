package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/pixel-round-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// SettingsPanel is the settings window. It owns its widgets and writes back
// into *config.Config on Apply.
type SettingsPanel interface {
	OpenOrFocus()
	Close()
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	themeNames = []string{"azure light", "azure dark"}
)

type settingsPanel struct {
	cfg       *config.Config
	cfgPath   string
	logger    *slog.Logger
	onApplied func()

	win      *ToplevelWidget
	levelBox *TComboboxWidget
	themeBox *TComboboxWidget
	widgets  map[string]*TextWidget // keyed by internal field id
}

// NewSettingsPanel creates the view bound to cfg. onApplied runs after a
// successful save.
func NewSettingsPanel(cfg *config.Config, cfgPath string, onApplied func(), logger *slog.Logger) SettingsPanel {
	return &settingsPanel{cfg: cfg, cfgPath: cfgPath, onApplied: onApplied, logger: logger, widgets: make(map[string]*TextWidget)}
}

func (v *settingsPanel) OpenOrFocus() {
	if v.win != nil {
		WmGeometry(v.win.Window)
		return
	}
	c := v.cfg
	if c == nil {
		return
	}
	win := App.Toplevel()
	win.WmTitle("Settings")
	WmProtocol(win.Window, "WM_DELETE_WINDOW", v.Close)
	v.win = win
	v.widgets = make(map[string]*TextWidget)

	row := 0
	makeRow := func(id, label, value string) {
		lbl := win.Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := win.Text(Height(1), Width(24))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeCombo := func(label string, values []string, current string) *TComboboxWidget {
		lbl := win.Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		box := win.TCombobox(Values(values), Width(22))
		Grid(box, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		box.Current(indexOf(values, current))
		row++
		return box
	}

	v.levelBox = makeCombo("Log Level", logLevels, c.LogLevel)
	v.themeBox = makeCombo("Theme", themeNames, c.Theme)
	makeRow("debug", "Debug Telemetry (true/false)", fmt.Sprintf("%t", c.Debug))
	makeRow("maxPreviewWidth", "Max Preview Width", fmt.Sprintf("%d", c.MaxPreviewWidth))
	makeRow("maxPreviewHeight", "Max Preview Height", fmt.Sprintf("%d", c.MaxPreviewHeight))
	makeRow("defaultRadius", "Startup Radius", fmt.Sprintf("%d", c.DefaultRadius))
	makeRow("exportDir", "Export Directory", c.ExportDir)
	makeRow("askSave", "Ask Save Location (true/false)", fmt.Sprintf("%t", c.AskSaveLocation))
	makeRow("captureDelay", "Capture Delay Seconds", fmt.Sprintf("%d", c.CaptureDelaySeconds))

	applyBtn := win.Button(Txt("Apply"), Command(v.applyChanges))
	Grid(applyBtn, Row(row), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	closeBtn := win.Button(Txt("Close"), Command(v.Close))
	Grid(closeBtn, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	GridColumnConfigure(win.Window, 1, Weight(1))
}

// Close destroys the settings window if open.
func (v *settingsPanel) Close() {
	if v.win != nil {
		Destroy(v.win)
		v.win = nil
	}
}

func (v *settingsPanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	parts := w.Get("1.0", END)
	return strings.Join(parts, "")
}

func (v *settingsPanel) comboValue(box *TComboboxWidget, values []string) (string, bool) {
	if box == nil {
		return "", false
	}
	idxStr := box.Current(nil)
	idx, err := strconv.Atoi(idxStr)
	if err != nil || idx < 0 || idx >= len(values) {
		if v.logger != nil {
			v.logger.Error("combobox selection parse error", "raw", idxStr, "error", err)
		}
		return "", false
	}
	return values[idx], true
}

func (v *settingsPanel) applyChanges() {
	if v.cfg == nil {
		return
	}
	cfg := *v.cfg // copy
	assignInt := func(id string, dst *int) {
		w := v.widgets[id]
		if w == nil {
			return
		}
		if i, ok := parseIntField(v.text(w)); ok {
			*dst = i
		}
	}
	assignBool := func(id string, dst *bool) {
		w := v.widgets[id]
		if w == nil {
			return
		}
		if b, ok := parseBoolLoose(v.text(w)); ok {
			*dst = b
		}
	}
	if lvl, ok := v.comboValue(v.levelBox, logLevels); ok {
		cfg.LogLevel = lvl
	}
	if th, ok := v.comboValue(v.themeBox, themeNames); ok {
		cfg.Theme = th
	}
	assignBool("debug", &cfg.Debug)
	assignInt("maxPreviewWidth", &cfg.MaxPreviewWidth)
	assignInt("maxPreviewHeight", &cfg.MaxPreviewHeight)
	assignInt("defaultRadius", &cfg.DefaultRadius)
	assignBool("askSave", &cfg.AskSaveLocation)
	assignInt("captureDelay", &cfg.CaptureDelaySeconds)
	if w := v.widgets["exportDir"]; w != nil {
		if val := strings.TrimSpace(v.text(w)); val != "" {
			cfg.ExportDir = val
		}
	}
	if verr := cfg.Validate(); verr != nil {
		return
	}
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
		return
	}
	if v.logger != nil {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
	if v.onApplied != nil {
		v.onApplied()
	}
}

// parsing helpers (unexported)
func parseIntField(s string) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return i, true
}
func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}

func indexOf(values []string, v string) int {
	for i, s := range values {
		if s == v {
			return i
		}
	}
	return 0
}
