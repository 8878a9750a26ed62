package presenter

import (
	"image"
	"path/filepath"
	"sync"
	"time"

	"log/slog"

	"github.com/soocke/pixel-round-go/config"
	"github.com/soocke/pixel-round-go/domain/export"
	"github.com/soocke/pixel-round-go/domain/render"
	"github.com/soocke/pixel-round-go/ui/model"
)

// ExportDocument narrows what an export needs from the document model.
type ExportDocument interface {
	Loaded() bool
	Image() image.Image
	Size() (int, int)
	AppliedSequence() uint64
}

// ExportView is the UI surface an export touches.
type ExportView interface {
	SetRevealEnabled(bool)
	AskSavePath(defaultName string) string
}

type exportTask struct {
	seq      uint64
	img      image.Image
	radius   int
	dir      string
	destPath string
}

type exportResult struct {
	seq       uint64
	path      string
	err       error
	radius    int
	effective float64
	duration  time.Duration
}

// ExportPresenter writes the clipped full-resolution PNG. The render and
// the file write run on a single worker goroutine; the task captures the
// document and radius at click time, so slider moves after the click do
// not change what lands on disk.
type ExportPresenter struct {
	Model  ExportDocument
	Radius RadiusSource
	View   ExportView
	Flash  *model.FlashModel
	logger *slog.Logger

	cfg    *config.Config
	reveal func(path string) error

	lastPath string

	workerOnce sync.Once
	workCh     chan exportTask
	resultCh   chan exportResult
}

// NewExportPresenter constructs an export presenter. The export directory
// and the save dialog preference come from cfg and are read at click time,
// so settings changes apply without a restart; reveal opens a file manager
// on a saved file.
func NewExportPresenter(m ExportDocument, radius RadiusSource, view ExportView, flash *model.FlashModel, cfg *config.Config, reveal func(string) error, logger *slog.Logger) *ExportPresenter {
	return &ExportPresenter{
		Model:    m,
		Radius:   radius,
		View:     view,
		Flash:    flash,
		logger:   logger,
		cfg:      cfg,
		reveal:   reveal,
		workCh:   make(chan exportTask, 1),
		resultCh: make(chan exportResult, 1),
	}
}

// Download schedules an export of the current document at the current
// radius. Without a document it does nothing.
func (p *ExportPresenter) Download() {
	if p == nil || p.Model == nil || !p.Model.Loaded() {
		return
	}
	task := exportTask{
		seq: p.Model.AppliedSequence(),
		img: p.Model.Image(),
	}
	// Snapshot config on the UI thread; the worker must not read cfg while
	// the settings panel may be writing it.
	askPath := false
	if p.cfg != nil {
		task.dir = p.cfg.ExportDir
		askPath = p.cfg.AskSaveLocation
	}
	if p.Radius != nil {
		task.radius = p.Radius.Value()
	}
	if askPath && p.View != nil {
		dest := p.View.AskSavePath(export.DefaultBaseName)
		if dest == "" {
			if p.logger != nil {
				p.logger.Info("export canceled in save dialog")
			}
			return
		}
		task.destPath = dest
	}
	p.ensureWorker()
	p.dispatch(task)
	if p.logger != nil {
		p.logger.Info("export scheduled", "radius", task.radius, "seq", task.seq)
	}
}

// RevealLast opens the most recently exported file in the platform file
// manager.
func (p *ExportPresenter) RevealLast() {
	if p == nil || p.lastPath == "" || p.reveal == nil {
		return
	}
	if err := p.reveal(p.lastPath); err != nil && p.logger != nil {
		p.logger.Warn("reveal failed", "path", p.lastPath, "error", err)
	}
}

// LastPath returns the location of the most recent export, or "".
func (p *ExportPresenter) LastPath() string {
	if p == nil {
		return ""
	}
	return p.lastPath
}

// Tick drains export completions.
func (p *ExportPresenter) Tick(now time.Time) {
	if p == nil {
		return
	}
	for {
		select {
		case res := <-p.resultCh:
			p.handleResult(res)
		default:
			return
		}
	}
}

func (p *ExportPresenter) handleResult(res exportResult) {
	if res.err != nil {
		// Nothing is shown; the document and preview are untouched.
		if p.logger != nil {
			p.logger.Error("export failed", "error", res.err, "radius", res.radius)
		}
		return
	}
	p.lastPath = res.path
	if p.View != nil {
		p.View.SetRevealEnabled(true)
	}
	p.Flash.Show("Saved "+filepath.Base(res.path), 5*time.Second, time.Now())
	if p.logger != nil {
		p.logger.Info("export written",
			"path", res.path,
			"radius", res.radius,
			"effective_radius", res.effective,
			"duration", res.duration)
	}
}

func (p *ExportPresenter) ensureWorker() {
	p.workerOnce.Do(func() {
		go p.runWorker()
	})
}

func (p *ExportPresenter) runWorker() {
	for task := range p.workCh {
		p.deliver(p.export(task))
	}
}

func (p *ExportPresenter) export(task exportTask) exportResult {
	start := time.Now()
	res := exportResult{seq: task.seq, radius: task.radius}
	if task.img != nil {
		b := task.img.Bounds()
		res.effective = render.EffectiveRadius(float64(task.radius), b.Dx(), b.Dy())
	}
	data, err := render.Render(task.img, float64(task.radius))
	if err != nil {
		res.err = err
		res.duration = time.Since(start)
		return res
	}
	if task.destPath != "" {
		res.err = export.SaveAt(task.destPath, data)
		res.path = task.destPath
	} else {
		res.path, res.err = export.Save(task.dir, export.DefaultBaseName, data)
	}
	res.duration = time.Since(start)
	return res
}

func (p *ExportPresenter) dispatch(task exportTask) {
	select {
	case p.workCh <- task:
	default:
		select {
		case <-p.workCh:
		default:
		}
		select {
		case p.workCh <- task:
		default:
		}
	}
}

func (p *ExportPresenter) deliver(res exportResult) {
	select {
	case p.resultCh <- res:
	default:
		select {
		case <-p.resultCh:
		default:
		}
		select {
		case p.resultCh <- res:
		default:
		}
	}
}
