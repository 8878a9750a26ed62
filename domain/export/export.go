// Package export writes rendered PNG bytes to disk the way a browser
// download does: a fixed base name, uniquified with " (n)" suffixes instead
// of overwriting whatever is already there.
package export

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultBaseName is the download name for exported images.
const DefaultBaseName = "rounded-image.png"

// maxNameAttempts bounds the uniquify loop for pathological directories.
const maxNameAttempts = 10000

// Save writes data into dir under base. If the name is taken the write
// retries as "base (1).ext", "base (2).ext" and so on; creation uses
// O_EXCL so two concurrent saves cannot land on the same file. The path
// actually written is returned.
func Save(dir, base string, data []byte) (string, error) {
	if base == "" {
		base = DefaultBaseName
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create dir %s: %w", dir, err)
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	for i := 0; i < maxNameAttempts; i++ {
		name := base
		if i > 0 {
			name = fmt.Sprintf("%s (%d)%s", stem, i, ext)
		}
		path := filepath.Join(dir, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("export: create %s: %w", path, err)
		}
		if err := writeAndClose(f, path, data); err != nil {
			return "", err
		}
		return path, nil
	}
	return "", fmt.Errorf("export: no free name for %s in %s", base, dir)
}

// writeAndClose flushes data into f and deletes the file again when the
// write or the close fails. A download either lands whole or not at all;
// no truncated file stays behind.
func writeAndClose(f io.WriteCloser, path string, data []byte) error {
	_, werr := f.Write(data)
	cerr := f.Close()
	if werr != nil {
		_ = os.Remove(path)
		return fmt.Errorf("export: write %s: %w", path, werr)
	}
	if cerr != nil {
		_ = os.Remove(path)
		return fmt.Errorf("export: close %s: %w", path, cerr)
	}
	return nil
}

// SaveAt writes data to an exact path chosen by the user, overwriting an
// existing file. Used by the save-dialog flow where the dialog already
// confirmed the overwrite.
func SaveAt(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}
