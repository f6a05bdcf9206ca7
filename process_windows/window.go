//go:build windows

package process_windows

import (
	"fmt"
	"unsafe"

	"hexbot/process"

	"golang.org/x/sys/windows"
)

var (
	user32                       = windows.NewLazySystemDLL("user32.dll")
	procFindWindowW              = user32.NewProc("FindWindowW")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
)

// FindProcessByWindowTitle resolves the PID of the process owning the top
// level window with exactly the given title
func FindProcessByWindowTitle(title string) (process.ProcessID, error) {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, fmt.Errorf("invalid window title: %w", err)
	}

	hwnd, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(titlePtr)))
	if hwnd == 0 {
		return 0, fmt.Errorf("no window found with title %q", title)
	}

	var pid uint32
	procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	if pid == 0 {
		return 0, fmt.Errorf("could not resolve process for window %q", title)
	}

	return process.ProcessID(pid), nil
}

// OpenProcessByWindowTitle opens the process owning the window with exactly
// the given title
func OpenProcessByWindowTitle(title string) (process.Process, error) {
	pid, err := FindProcessByWindowTitle(title)
	if err != nil {
		return nil, err
	}

	return NewWithPID(pid)
}
