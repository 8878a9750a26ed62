//go:build !windows

package action

import (
	"os/exec"
	"path/filepath"
	"runtime"
)

// RevealFile opens the platform file manager at the file's directory. Only
// Windows supports selecting the file itself; elsewhere opening the folder
// is the closest available behavior.
func RevealFile(path string) error {
	return OpenFolder(filepath.Dir(path))
}

// OpenFolder opens the platform file manager at the given directory.
func OpenFolder(dir string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", dir).Start()
	default:
		return exec.Command("xdg-open", dir).Start()
	}
}
