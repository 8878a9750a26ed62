package model

import (
	"time"
)

// FlashModel carries a transient status message with an expiry deadline.
// It is decoupled from the UI; presenters poll Text() on tick and push
// changes into the status bar. The zero value is ready to use.
type FlashModel struct {
	text  string
	until time.Time
}

// NewFlashModel returns a pointer to a ready-to-use FlashModel.
func NewFlashModel() *FlashModel { return &FlashModel{} }

// Show replaces the current message, visible until now+d.
func (m *FlashModel) Show(text string, d time.Duration, now time.Time) {
	if m == nil {
		return
	}
	m.text = text
	m.until = now.Add(d)
}

// OnTick clears the message once its deadline has passed.
// Call periodically (for example, from a presenter tick).
func (m *FlashModel) OnTick(now time.Time) {
	if m == nil || m.text == "" {
		return
	}
	if now.After(m.until) {
		m.text = ""
		m.until = time.Time{}
	}
}

// Text returns the active message, empty when nothing is flashing.
func (m *FlashModel) Text() string {
	if m == nil {
		return ""
	}
	return m.text
}
