package presenter

import (
	"image"
	"time"

	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/soocke/pixel-round-go/config"
	"github.com/soocke/pixel-round-go/domain/render"
	"github.com/soocke/pixel-round-go/ui/images"
)

// DocumentSource narrows what the preview needs from the document model.
type DocumentSource interface {
	Loaded() bool
	Image() image.Image
	Size() (int, int)
	AppliedSequence() uint64
}

// RadiusSource yields the current corner radius in source pixels.
type RadiusSource interface {
	Value() int
}

// PreviewView receives rendered preview frames.
type PreviewView interface {
	UpdatePreview(png []byte)
	ShowPlaceholder()
}

type previewKey struct {
	docSeq uint64
	radius int
}

const previewCacheSize = 64

// PreviewPresenter redraws the preview whenever the document or the radius
// changed since the last tick. The source bitmap is downscaled once per
// document and kept; per-radius frames are clipped from that fitted copy
// with the radius scaled by the same factor, composed over a checkerboard
// and cached so scrubbing the slider back over recent values is free.
type PreviewPresenter struct {
	Model  DocumentSource
	Radius RadiusSource
	View   PreviewView
	logger *slog.Logger

	cfg *config.Config

	fitted    *image.NRGBA
	fittedSeq uint64
	scale     float64

	cache       *lru.Cache[previewKey, []byte]
	lastShown   previewKey
	lastBox     image.Point
	shownYet    bool
	placeholder bool
}

// NewPreviewPresenter constructs a preview presenter. The preview box
// bounds come from cfg and are re-read every tick, so a settings change
// resizes the preview without a restart.
func NewPreviewPresenter(m DocumentSource, radius RadiusSource, view PreviewView, cfg *config.Config, logger *slog.Logger) *PreviewPresenter {
	cache, _ := lru.New[previewKey, []byte](previewCacheSize)
	return &PreviewPresenter{
		Model:  m,
		Radius: radius,
		View:   view,
		logger: logger,
		cfg:    cfg,
		cache:  cache,
	}
}

// Tick refreshes the preview if its inputs moved.
func (p *PreviewPresenter) Tick(now time.Time) {
	if p == nil || p.Model == nil || p.View == nil {
		return
	}
	if !p.Model.Loaded() {
		if !p.placeholder {
			p.View.ShowPlaceholder()
			p.placeholder = true
		}
		return
	}
	if box := p.previewBox(); box != p.lastBox {
		// The fitted bitmap and every cached frame were rendered for the
		// old box size.
		p.cache.Purge()
		p.fitted = nil
		p.shownYet = false
		p.lastBox = box
	}
	key := previewKey{docSeq: p.Model.AppliedSequence(), radius: p.radiusValue()}
	if p.shownYet && !p.placeholder && key == p.lastShown {
		return
	}
	frame, ok := p.cache.Get(key)
	if !ok {
		frame = p.renderFrame(key)
		if frame == nil {
			return
		}
		p.cache.Add(key, frame)
	}
	p.View.UpdatePreview(frame)
	p.lastShown = key
	p.shownYet = true
	p.placeholder = false
}

func (p *PreviewPresenter) radiusValue() int {
	if p.Radius == nil {
		return 0
	}
	return p.Radius.Value()
}

func (p *PreviewPresenter) previewBox() image.Point {
	if p.cfg == nil {
		return image.Pt(960, 540)
	}
	return image.Pt(p.cfg.MaxPreviewWidth, p.cfg.MaxPreviewHeight)
}

func (p *PreviewPresenter) renderFrame(key previewKey) []byte {
	src := p.Model.Image()
	if src == nil {
		return nil
	}
	if p.fitted == nil || p.fittedSeq != key.docSeq {
		start := time.Now()
		w, h := p.Model.Size()
		p.scale = images.PreviewScale(w, h, p.lastBox.X, p.lastBox.Y)
		p.fitted = images.FitPreview(src, p.lastBox.X, p.lastBox.Y)
		p.fittedSeq = key.docSeq
		if p.logger != nil {
			p.logger.Debug("preview source fitted",
				"source_w", w, "source_h", h,
				"scale", p.scale,
				"duration", time.Since(start))
		}
	}
	clipped := render.Clip(p.fitted, float64(key.radius)*p.scale)
	if clipped == nil {
		return nil
	}
	return images.EncodePNG(images.OverCheckerboard(clipped))
}
