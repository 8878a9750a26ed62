package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Config holds operational settings for the application. It deliberately
// carries no session state: the loaded image and the current radius are
// never persisted, only tool behavior is.
type Config struct {
	LogLevel string `json:"log_level"`
	Debug    bool   `json:"debug"`

	// Preview box bounds in pixels. The width default matches the preview
	// cap the radius scaling is defined against.
	MaxPreviewWidth  int `json:"max_preview_width"`
	MaxPreviewHeight int `json:"max_preview_height"`

	// Corner radius the slider starts at on launch.
	DefaultRadius int `json:"default_radius"`

	// Export behavior.
	ExportDir       string `json:"export_dir"`
	AskSaveLocation bool   `json:"ask_save_location"`

	// Seconds between pressing a capture button and the screen grab.
	CaptureDelaySeconds int `json:"capture_delay_seconds"`

	Theme string `json:"theme"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:            "info",
		Debug:               false,
		MaxPreviewWidth:     960,
		MaxPreviewHeight:    540,
		DefaultRadius:       0,
		ExportDir:           defaultExportDir(),
		AskSaveLocation:     false,
		CaptureDelaySeconds: 3,
		Theme:               "azure light",
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
		c.LogLevel = strings.ToLower(c.LogLevel)
	default:
		c.LogLevel = "info"
	}
	if c.MaxPreviewWidth < 320 {
		c.MaxPreviewWidth = 320
	}
	if c.MaxPreviewWidth > 4096 {
		c.MaxPreviewWidth = 4096
	}
	if c.MaxPreviewHeight < 180 {
		c.MaxPreviewHeight = 180
	}
	if c.MaxPreviewHeight > 4096 {
		c.MaxPreviewHeight = 4096
	}
	if c.DefaultRadius < 0 {
		c.DefaultRadius = 0
	}
	if c.DefaultRadius > 300 {
		c.DefaultRadius = 300
	}
	if c.ExportDir == "" {
		c.ExportDir = defaultExportDir()
	}
	if c.CaptureDelaySeconds < 0 {
		c.CaptureDelaySeconds = 0
	}
	if c.CaptureDelaySeconds > 10 {
		c.CaptureDelaySeconds = 10
	}
	if c.Theme == "" {
		c.Theme = "azure light"
	}
	return nil
}

// Level maps the configured log level onto a slog level.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// DefaultPath returns the per-user config file location, falling back to the
// working directory when no XDG config home can be resolved.
func DefaultPath() string {
	if p, err := xdg.ConfigFile(filepath.Join("pixel-round", "config.json")); err == nil {
		return p
	}
	return "config.json"
}

// defaultExportDir picks the user's download directory when known, mirroring
// where a browser would put the file, with the home directory as fallback.
func defaultExportDir() string {
	if d := xdg.UserDirs.Download; d != "" {
		return d
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}
