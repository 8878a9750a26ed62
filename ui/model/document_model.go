package model

import (
	"image"
)

// DocState is the application-level lifecycle of the loaded document.
// Once an image has been loaded the app never returns to the empty state;
// later loads replace the document wholesale.
type DocState int

const (
	StateEmpty DocState = iota
	StateLoaded
)

func (s DocState) String() string {
	if s == StateLoaded {
		return "loaded"
	}
	return "empty"
}

// DocumentModel holds the currently loaded image and the bookkeeping for
// asynchronous decodes. Decode requests are stamped with a monotonic
// sequence number; a completion is applied only while its number is still
// the latest issued, so a slow decode can never overwrite a newer image.
// No synchronization needed: sequence issuance and Apply both happen on the
// UI thread tick.
type DocumentModel struct {
	state      DocState
	img        image.Image
	data       []byte
	source     string
	format     string
	w, h       int
	issuedSeq  uint64
	appliedSeq uint64
}

func NewDocumentModel() *DocumentModel { return &DocumentModel{} }

// State returns the lifecycle state.
func (m *DocumentModel) State() DocState {
	if m == nil {
		return StateEmpty
	}
	return m.state
}

// Loaded reports whether an image is present.
func (m *DocumentModel) Loaded() bool { return m.State() == StateLoaded }

// IssueSequence reserves and returns the sequence number for a new decode
// request, invalidating any decode still in flight.
func (m *DocumentModel) IssueSequence() uint64 {
	if m == nil {
		return 0
	}
	m.issuedSeq++
	return m.issuedSeq
}

// LatestSequence returns the most recently issued sequence number.
func (m *DocumentModel) LatestSequence() uint64 {
	if m == nil {
		return 0
	}
	return m.issuedSeq
}

// Apply installs a decode completion. It returns false without touching the
// document when seq is no longer the latest issued request or the image is
// unusable.
func (m *DocumentModel) Apply(seq uint64, img image.Image, data []byte, format, source string) bool {
	if m == nil || img == nil {
		return false
	}
	if seq != m.issuedSeq || seq <= m.appliedSeq {
		return false
	}
	b := img.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return false
	}
	m.img = img
	m.data = data
	m.format = format
	m.source = source
	m.w, m.h = b.Dx(), b.Dy()
	m.appliedSeq = seq
	m.state = StateLoaded
	return true
}

// Image returns the decoded bitmap, nil while empty.
func (m *DocumentModel) Image() image.Image {
	if m == nil {
		return nil
	}
	return m.img
}

// Data returns the original encoded bytes of the loaded image.
func (m *DocumentModel) Data() []byte {
	if m == nil {
		return nil
	}
	return m.data
}

// Size returns the natural pixel dimensions, zero while empty.
func (m *DocumentModel) Size() (w, h int) {
	if m == nil {
		return 0, 0
	}
	return m.w, m.h
}

// SourceName returns the display name of the loaded image.
func (m *DocumentModel) SourceName() string {
	if m == nil {
		return ""
	}
	return m.source
}

// Format returns the decoded format name (png, jpeg, ...).
func (m *DocumentModel) Format() string {
	if m == nil {
		return ""
	}
	return m.format
}

// AppliedSequence returns the sequence of the currently installed image.
// Preview and export caches key on it to notice document swaps.
func (m *DocumentModel) AppliedSequence() uint64 {
	if m == nil {
		return 0
	}
	return m.appliedSeq
}
