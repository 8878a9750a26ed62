package action

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const swShowNormal = 1

// RevealFile opens Explorer with the given file selected.
// Windows implementation using ShellExecuteW on explorer.exe /select.
func RevealFile(path string) error {
	params := fmt.Sprintf("/select,\"%s\"", path)
	return shellExecute("open", "explorer.exe", params)
}

// OpenFolder opens Explorer at the given directory.
func OpenFolder(dir string) error {
	return shellExecute("open", dir, "")
}

func shellExecute(verb, file, params string) error {
	shell32 := windows.NewLazySystemDLL("shell32.dll")
	proc := shell32.NewProc("ShellExecuteW")
	verbP, err := windows.UTF16PtrFromString(verb)
	if err != nil {
		return err
	}
	fileP, err := windows.UTF16PtrFromString(file)
	if err != nil {
		return err
	}
	var paramsP *uint16
	if params != "" {
		paramsP, err = windows.UTF16PtrFromString(params)
		if err != nil {
			return err
		}
	}
	r1, _, _ := proc.Call(0,
		uintptr(unsafe.Pointer(verbP)),
		uintptr(unsafe.Pointer(fileP)),
		uintptr(unsafe.Pointer(paramsP)),
		0, swShowNormal)
	// ShellExecute returns a value greater than 32 on success.
	if r1 <= 32 {
		return fmt.Errorf("ShellExecuteW %s %s failed with code %d", file, params, r1)
	}
	return nil
}
