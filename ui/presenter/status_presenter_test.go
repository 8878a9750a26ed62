package presenter

import (
	"testing"
	"time"

	"github.com/soocke/pixel-round-go/ui/model"
)

type mockStatusView struct {
	infos   []string
	flashes []string
}

func (v *mockStatusView) SetInfo(text string) { v.infos = append(v.infos, text) }
func (v *mockStatusView) SetFlash(text string) { v.flashes = append(v.flashes, text) }

var _ StatusView = (*mockStatusView)(nil)

func TestStatusPresenter_EmptyDocumentPushedOnce(t *testing.T) {
	view := &mockStatusView{}
	p := NewStatusPresenter(model.NewDocumentModel(), model.NewRadiusModel(0), model.NewFlashModel(), view)

	p.Tick(time.Now())
	p.Tick(time.Now())

	if len(view.infos) != 1 || view.infos[0] != "No image loaded" {
		t.Fatalf("unexpected info pushes: %v", view.infos)
	}
	if len(view.flashes) != 1 || view.flashes[0] != "" {
		t.Fatalf("unexpected flash pushes: %v", view.flashes)
	}
}

func TestStatusPresenter_LoadedInfoLine(t *testing.T) {
	m := model.NewDocumentModel()
	r := model.NewRadiusModel(50)
	view := &mockStatusView{}
	p := NewStatusPresenter(m, r, model.NewFlashModel(), view)

	loadDocument(t, m, 1000, 500, "photo.png")
	p.Tick(time.Now())

	want := "photo.png  1000x500 png  radius 50"
	if got := view.infos[len(view.infos)-1]; got != want {
		t.Fatalf("info line %q, want %q", got, want)
	}
}

func TestStatusPresenter_ClampedRadiusAnnotated(t *testing.T) {
	cases := []struct {
		w, h   int
		radius int
		want   string
	}{
		{100, 100, 300, "photo.png  100x100 png  radius 300 (max 50)"},
		{99, 100, 300, "photo.png  99x100 png  radius 300 (max 49.5)"},
		{1000, 500, 50, "photo.png  1000x500 png  radius 50"},
	}
	for _, tc := range cases {
		m := model.NewDocumentModel()
		r := model.NewRadiusModel(tc.radius)
		view := &mockStatusView{}
		p := NewStatusPresenter(m, r, model.NewFlashModel(), view)

		loadDocument(t, m, tc.w, tc.h, "photo.png")
		p.Tick(time.Now())

		if got := view.infos[len(view.infos)-1]; got != tc.want {
			t.Errorf("%dx%d r=%d: info %q, want %q", tc.w, tc.h, tc.radius, got, tc.want)
		}
	}
}

func TestStatusPresenter_FlashShownAndExpired(t *testing.T) {
	m := model.NewDocumentModel()
	flash := model.NewFlashModel()
	view := &mockStatusView{}
	p := NewStatusPresenter(m, model.NewRadiusModel(0), flash, view)

	flash.Show("Saved rounded-image.png", 50*time.Millisecond, time.Now())
	p.Tick(time.Now())
	if got := view.flashes[len(view.flashes)-1]; got != "Saved rounded-image.png" {
		t.Fatalf("flash not shown: %q", got)
	}

	p.Tick(time.Now().Add(100 * time.Millisecond))
	if got := view.flashes[len(view.flashes)-1]; got != "" {
		t.Fatalf("flash not cleared: %q", got)
	}
}
