package app

import (
	"log/slog"
	"time"

	"github.com/soocke/pixel-round-go/capture"
	"github.com/soocke/pixel-round-go/config"
	"github.com/soocke/pixel-round-go/domain/action"
	"github.com/soocke/pixel-round-go/domain/grab"
	"github.com/soocke/pixel-round-go/ui/model"
	"github.com/soocke/pixel-round-go/ui/presenter"
	"github.com/soocke/pixel-round-go/ui/view"
)

// AppContainer assembles models, the grab machine, presenters and the root view.
type AppContainer struct {
	Config *config.Config
	Logger *slog.Logger

	Document *model.DocumentModel
	Radius   *model.RadiusModel
	Flash    *model.FlashModel
	FSM      grab.Contract
	RootView *view.RootView
	UI       view.UI

	// Presenters
	LoadPresenter    *presenter.LoadPresenter
	RadiusPresenter  *presenter.RadiusPresenter
	PreviewPresenter *presenter.PreviewPresenter
	ExportPresenter  *presenter.ExportPresenter
	GrabPresenter    *presenter.GrabPresenter
	StatusPresenter  *presenter.StatusPresenter
	Loop             *presenter.Loop
}

// BuildContainer constructs all components. The root view is created but its
// widgets are not built yet; Build runs later on the Tk thread.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Document = model.NewDocumentModel()
	c.Radius = model.NewRadiusModel(cfg.DefaultRadius)
	c.Flash = model.NewFlashModel()
	c.FSM = grab.NewFSM(logger, time.Duration(cfg.CaptureDelaySeconds)*time.Second)
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.UI = c.RootView
	c.LoadPresenter = presenter.NewLoadPresenter(c.Document, c.RootView, c.Flash, logger)
	c.RadiusPresenter = presenter.NewRadiusPresenter(c.Radius, c.RootView, logger)
	c.PreviewPresenter = presenter.NewPreviewPresenter(c.Document, c.Radius, c.RootView, cfg, logger)
	c.ExportPresenter = presenter.NewExportPresenter(c.Document, c.Radius, c.RootView, c.Flash, cfg, action.RevealFile, logger)
	c.GrabPresenter = presenter.NewGrabPresenter(c.FSM, capture.Screen{}, c.RootView, c.LoadPresenter, logger)
	c.StatusPresenter = presenter.NewStatusPresenter(c.Document, c.Radius, c.Flash, c.RootView)
	return c
}
