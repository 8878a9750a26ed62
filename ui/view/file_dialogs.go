package view

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// FileDialogs wraps the platform file chooser. No type filter is applied;
// unreadable picks are rejected downstream by the decoder.
type FileDialogs interface {
	PickImage() string
	SaveAs(dir, defaultName string) string
}

type fileDialogs struct{}

// NewFileDialogs returns the native dialog implementation.
func NewFileDialogs() FileDialogs { return fileDialogs{} }

// PickImage opens the file chooser and returns the selected path, empty on
// cancel.
func (fileDialogs) PickImage() string {
	paths := GetOpenFile(Title("Open Image"))
	if len(paths) == 0 {
		return ""
	}
	return paths[0]
}

// SaveAs opens the save dialog seeded with the standard export name and
// returns the chosen path, empty on cancel.
func (fileDialogs) SaveAs(dir, defaultName string) string {
	return GetSaveFile(Title("Save Rounded PNG"), Initialdir(dir), Initialfile(defaultName))
}
