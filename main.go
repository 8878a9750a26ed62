package main

import (
	"os"

	"github.com/soocke/pixel-round-go/app"
	"github.com/soocke/pixel-round-go/config"
)

func main() {
	cfgPath := config.DefaultPath()
	cfg, err := config.Load(cfgPath)

	// Set up logger
	logger := NewLogger(cfg.Level())
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", cfgPath, "error", err)
	}

	// An image path given on the command line is loaded at startup.
	initial := ""
	if len(os.Args) > 1 {
		initial = os.Args[1]
	}

	application := app.NewApp("Pixel Round", 1000, 760, cfg, cfgPath, logger)
	application.Start(initial)
}
