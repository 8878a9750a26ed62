package model

import (
	"image"
	"testing"
)

func testImage(w, h int) image.Image {
	return image.NewNRGBA(image.Rect(0, 0, w, h))
}

func TestDocumentModel_EmptyUntilApplied(t *testing.T) {
	m := NewDocumentModel()
	if m.State() != StateEmpty || m.Loaded() {
		t.Fatalf("fresh model should be empty")
	}
	if m.Image() != nil || m.SourceName() != "" {
		t.Fatalf("fresh model holds data")
	}
}

func TestDocumentModel_ApplyLatestSequence(t *testing.T) {
	m := NewDocumentModel()
	seq := m.IssueSequence()
	if !m.Apply(seq, testImage(10, 20), []byte{1}, "png", "a.png") {
		t.Fatalf("apply of latest sequence rejected")
	}
	if !m.Loaded() {
		t.Fatalf("state should be loaded")
	}
	if w, h := m.Size(); w != 10 || h != 20 {
		t.Fatalf("size = %dx%d, want 10x20", w, h)
	}
	if m.Format() != "png" || m.SourceName() != "a.png" {
		t.Fatalf("metadata lost: %q %q", m.Format(), m.SourceName())
	}
}

func TestDocumentModel_StaleSequenceDropped(t *testing.T) {
	m := NewDocumentModel()
	first := m.IssueSequence()
	second := m.IssueSequence()
	// The slow first decode completes after a newer request was issued.
	if m.Apply(first, testImage(1, 1), nil, "png", "old.png") {
		t.Fatalf("stale completion was applied")
	}
	if m.Loaded() {
		t.Fatalf("stale completion changed state")
	}
	if !m.Apply(second, testImage(2, 2), nil, "png", "new.png") {
		t.Fatalf("latest completion rejected")
	}
	if m.SourceName() != "new.png" {
		t.Fatalf("wrong document installed: %s", m.SourceName())
	}
	// The stale one still cannot land afterwards.
	if m.Apply(first, testImage(9, 9), nil, "png", "old.png") {
		t.Fatalf("stale completion applied after newer apply")
	}
}

func TestDocumentModel_NeverReturnsToEmpty(t *testing.T) {
	m := NewDocumentModel()
	seq := m.IssueSequence()
	m.Apply(seq, testImage(4, 4), nil, "png", "a.png")
	// A failed later load leaves the previous document in place: the
	// presenter simply never applies anything for the failed request.
	_ = m.IssueSequence()
	if !m.Loaded() || m.SourceName() != "a.png" {
		t.Fatalf("document lost after unapplied request")
	}
	// A successful later load replaces it, state stays loaded.
	seq3 := m.IssueSequence()
	if !m.Apply(seq3, testImage(8, 8), nil, "jpeg", "b.jpg") {
		t.Fatalf("replacement rejected")
	}
	if m.State() != StateLoaded || m.SourceName() != "b.jpg" {
		t.Fatalf("replacement not installed")
	}
}

func TestDocumentModel_RejectsUnusableImages(t *testing.T) {
	m := NewDocumentModel()
	seq := m.IssueSequence()
	if m.Apply(seq, nil, nil, "", "x") {
		t.Fatalf("nil image applied")
	}
	seq = m.IssueSequence()
	if m.Apply(seq, testImage(0, 0), nil, "png", "x") {
		t.Fatalf("empty image applied")
	}
	if m.Loaded() {
		t.Fatalf("state changed by unusable images")
	}
}

func TestDocumentModel_NilReceiverSafe(t *testing.T) {
	var m *DocumentModel
	if m.Loaded() || m.IssueSequence() != 0 || m.Image() != nil {
		t.Fatalf("nil receiver misbehaved")
	}
	if m.Apply(1, testImage(1, 1), nil, "png", "a") {
		t.Fatalf("nil receiver accepted apply")
	}
}
