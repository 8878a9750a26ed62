package presenter

import (
	"image"
	"path/filepath"
	"sync"
	"time"

	"log/slog"

	"github.com/soocke/pixel-round-go/domain/decode"
	"github.com/soocke/pixel-round-go/ui/images"
	"github.com/soocke/pixel-round-go/ui/model"
)

// DocumentSink narrows what the load presenter needs from the document model.
type DocumentSink interface {
	IssueSequence() uint64
	LatestSequence() uint64
	Apply(seq uint64, img image.Image, data []byte, format, source string) bool
	Loaded() bool
}

// LoadView describes the UI surface toggled when a document lands.
type LoadView interface {
	SetDownloadEnabled(bool)
}

type loadTask struct {
	seq  uint64
	path string
	name string
}

type loadResult struct {
	seq      uint64
	err      error
	img      image.Image
	data     []byte
	format   string
	name     string
	duration time.Duration
}

// LoadPresenter turns file picks, program arguments and screen grabs into
// installed documents. File decodes run on a single worker goroutine;
// completions carry the sequence issued at request time and are applied on
// the UI tick only while still the latest, so a slow decode of an older
// pick can never clobber a newer one.
type LoadPresenter struct {
	Model  DocumentSink
	View   LoadView
	Flash  *model.FlashModel
	logger *slog.Logger

	workerOnce sync.Once
	workCh     chan loadTask
	resultCh   chan loadResult
}

// NewLoadPresenter constructs a load presenter.
func NewLoadPresenter(m DocumentSink, view LoadView, flash *model.FlashModel, logger *slog.Logger) *LoadPresenter {
	return &LoadPresenter{
		Model:    m,
		View:     view,
		Flash:    flash,
		logger:   logger,
		workCh:   make(chan loadTask, 1),
		resultCh: make(chan loadResult, 1),
	}
}

// OpenPath schedules an asynchronous decode of the file at path. Any decode
// still in flight is superseded.
func (p *LoadPresenter) OpenPath(path string) {
	if p == nil || p.Model == nil || path == "" {
		return
	}
	p.ensureWorker()
	seq := p.Model.IssueSequence()
	p.dispatch(loadTask{seq: seq, path: path, name: filepath.Base(path)})
	if p.logger != nil {
		p.logger.Info("decode scheduled", "path", path, "seq", seq)
	}
}

// ApplyImage installs an already-decoded bitmap, e.g. a screen grab. Runs
// synchronously on the UI thread; the bitmap is PNG-encoded once so exports
// re-read exact source bytes like file loads do.
func (p *LoadPresenter) ApplyImage(img image.Image, name string) {
	if p == nil || p.Model == nil || img == nil {
		return
	}
	seq := p.Model.IssueSequence()
	if p.Model.Apply(seq, img, images.EncodePNG(img), "png", name) {
		p.afterLoad(name)
	}
}

// Tick drains worker results and applies fresh completions.
func (p *LoadPresenter) Tick(now time.Time) {
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

func (p *LoadPresenter) handleResult(res loadResult) {
	if res.err != nil {
		// Silent toward the user: the previous document stays.
		if p.logger != nil {
			p.logger.Warn("image load failed", "source", res.name, "error", res.err)
		}
		return
	}
	if res.seq != p.Model.LatestSequence() {
		if p.logger != nil {
			p.logger.Debug("stale decode dropped", "source", res.name, "seq", res.seq)
		}
		return
	}
	if p.Model.Apply(res.seq, res.img, res.data, res.format, res.name) {
		if p.logger != nil {
			p.logger.Info("document loaded",
				"source", res.name,
				"format", res.format,
				"duration", res.duration)
		}
		p.afterLoad(res.name)
	}
}

func (p *LoadPresenter) afterLoad(name string) {
	if p.View != nil {
		p.View.SetDownloadEnabled(true)
	}
	p.Flash.Show("Loaded "+name, 3*time.Second, time.Now())
}

func (p *LoadPresenter) ensureWorker() {
	p.workerOnce.Do(func() {
		go p.runWorker()
	})
}

func (p *LoadPresenter) runWorker() {
	for task := range p.workCh {
		start := time.Now()
		res := loadResult{seq: task.seq, name: task.name}
		d, err := decode.File(task.path)
		if err != nil {
			res.err = err
		} else {
			res.img = d.Img
			res.data = d.Data
			res.format = d.Format
		}
		res.duration = time.Since(start)
		p.deliver(res)
	}
}

func (p *LoadPresenter) dispatch(task loadTask) {
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

func (p *LoadPresenter) deliver(res loadResult) {
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
