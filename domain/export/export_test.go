package export

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestSave_UsesBaseNameWhenFree(t *testing.T) {
	dir := t.TempDir()
	path, err := Save(dir, DefaultBaseName, []byte("png-bytes"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if filepath.Base(path) != "rounded-image.png" {
		t.Fatalf("got %s, want rounded-image.png", filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "png-bytes" {
		t.Fatalf("read back: %v %q", err, data)
	}
}

func TestSave_UniquifiesLikeADownload(t *testing.T) {
	dir := t.TempDir()
	want := []string{"rounded-image.png", "rounded-image (1).png", "rounded-image (2).png"}
	for i, w := range want {
		path, err := Save(dir, DefaultBaseName, []byte{byte(i)})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		if filepath.Base(path) != w {
			t.Fatalf("save %d: got %s, want %s", i, filepath.Base(path), w)
		}
	}
	// The first file is untouched by later saves.
	data, err := os.ReadFile(filepath.Join(dir, "rounded-image.png"))
	if err != nil || len(data) != 1 || data[0] != 0 {
		t.Fatalf("first file clobbered: %v %v", err, data)
	}
}

func TestSave_CreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	path, err := Save(dir, "", []byte("x"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("wrote to %s, want %s", filepath.Dir(path), dir)
	}
}

// faultyFile writes a byte and then reports a full device.
type faultyFile struct {
	f *os.File
}

var _ io.WriteCloser = (*faultyFile)(nil)

func (w *faultyFile) Write(p []byte) (int, error) {
	if len(p) > 0 {
		_, _ = w.f.Write(p[:1])
	}
	return 0, errors.New("no space left on device")
}

func (w *faultyFile) Close() error { return w.f.Close() }

func TestSave_FailedWriteLeavesNoPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rounded-image.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	err = writeAndClose(&faultyFile{f: f}, path, []byte("png-bytes"))
	if err == nil {
		t.Fatalf("write failure not reported")
	}
	if _, serr := os.Stat(path); !errors.Is(serr, fs.ErrNotExist) {
		t.Fatalf("partial file left behind: %v", serr)
	}
}

func TestSaveAt_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picked.png")
	if err := SaveAt(path, []byte("one")); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := SaveAt(path, []byte("two")); err != nil {
		t.Fatalf("second write: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "two" {
		t.Fatalf("got %q, want two", data)
	}
}
