package presenter

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"log/slog"

	"github.com/soocke/pixel-round-go/ui/model"
)

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discardWriter{}, nil))
}

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	return img
}

func writeTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(w, h)); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

type mockLoadView struct {
	downloadCalls int
	lastDownload  bool
}

func (v *mockLoadView) SetDownloadEnabled(b bool) { v.downloadCalls++; v.lastDownload = b }

var _ LoadView = (*mockLoadView)(nil)

func waitLoaded(t *testing.T, p *LoadPresenter, m *model.DocumentModel, source string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		p.Tick(time.Now())
		if m.Loaded() && m.SourceName() == source {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("document never loaded from %q (state=%v source=%q)", source, m.State(), m.SourceName())
}

func TestLoadPresenter_OpenPathInstallsDocument(t *testing.T) {
	m := model.NewDocumentModel()
	flash := model.NewFlashModel()
	view := &mockLoadView{}
	p := NewLoadPresenter(m, view, flash, discardLogger())

	path := writeTestPNG(t, t.TempDir(), "fixture.png", 64, 32)
	p.OpenPath(path)
	waitLoaded(t, p, m, "fixture.png")

	if w, h := m.Size(); w != 64 || h != 32 {
		t.Fatalf("unexpected size %dx%d", w, h)
	}
	if m.Format() != "png" {
		t.Fatalf("unexpected format %q", m.Format())
	}
	if len(m.Data()) == 0 {
		t.Fatalf("expected original bytes to be retained")
	}
	if !view.lastDownload || view.downloadCalls == 0 {
		t.Fatalf("download button not enabled: calls=%d last=%v", view.downloadCalls, view.lastDownload)
	}
	if flash.Text() != "Loaded fixture.png" {
		t.Fatalf("unexpected flash %q", flash.Text())
	}
}

func TestLoadPresenter_ApplyImageInstallsSynchronously(t *testing.T) {
	m := model.NewDocumentModel()
	flash := model.NewFlashModel()
	view := &mockLoadView{}
	p := NewLoadPresenter(m, view, flash, discardLogger())

	p.ApplyImage(testImage(40, 20), "screen capture")

	if !m.Loaded() || m.SourceName() != "screen capture" {
		t.Fatalf("capture not installed: state=%v source=%q", m.State(), m.SourceName())
	}
	if m.Format() != "png" {
		t.Fatalf("captures should be stored as png, got %q", m.Format())
	}
	if len(m.Data()) == 0 {
		t.Fatalf("capture was not re-encoded for export")
	}
}

func TestLoadPresenter_FailedLoadKeepsDocument(t *testing.T) {
	m := model.NewDocumentModel()
	flash := model.NewFlashModel()
	view := &mockLoadView{}
	p := NewLoadPresenter(m, view, flash, discardLogger())

	p.ApplyImage(testImage(40, 20), "first")
	seq := m.IssueSequence()
	p.handleResult(loadResult{seq: seq, err: errors.New("broken file"), name: "broken.png"})

	if m.SourceName() != "first" {
		t.Fatalf("failed load replaced document: %q", m.SourceName())
	}
	if !m.Loaded() {
		t.Fatalf("failed load cleared document")
	}
}

func TestLoadPresenter_StaleResultDropped(t *testing.T) {
	m := model.NewDocumentModel()
	flash := model.NewFlashModel()
	view := &mockLoadView{}
	p := NewLoadPresenter(m, view, flash, discardLogger())

	first := m.IssueSequence()
	second := m.IssueSequence()

	p.handleResult(loadResult{seq: first, img: testImage(10, 10), data: []byte{1}, format: "png", name: "old.png"})
	if m.Loaded() {
		t.Fatalf("stale completion was applied")
	}
	p.handleResult(loadResult{seq: second, img: testImage(20, 20), data: []byte{2}, format: "png", name: "new.png"})
	if !m.Loaded() || m.SourceName() != "new.png" {
		t.Fatalf("latest completion not applied: %q", m.SourceName())
	}
	// The first one arriving late again must still be rejected.
	p.handleResult(loadResult{seq: first, img: testImage(10, 10), data: []byte{1}, format: "png", name: "old.png"})
	if m.SourceName() != "new.png" {
		t.Fatalf("stale completion clobbered newer document: %q", m.SourceName())
	}
}

func TestLoadPresenter_UnreadableFileIsSilent(t *testing.T) {
	m := model.NewDocumentModel()
	flash := model.NewFlashModel()
	view := &mockLoadView{}
	p := NewLoadPresenter(m, view, flash, discardLogger())

	p.OpenPath(filepath.Join(t.TempDir(), "does-not-exist.png"))

	deadline := time.Now().Add(300 * time.Millisecond)
	for time.Now().Before(deadline) {
		p.Tick(time.Now())
		time.Sleep(5 * time.Millisecond)
	}
	if m.Loaded() {
		t.Fatalf("missing file produced a document")
	}
	if view.downloadCalls != 0 {
		t.Fatalf("download button touched on failure")
	}
	if flash.Text() != "" {
		t.Fatalf("failure produced user-visible text %q", flash.Text())
	}
}
