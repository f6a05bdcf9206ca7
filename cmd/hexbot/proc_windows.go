//go:build windows

package main

import (
	"hexbot/process"
	"hexbot/process_windows"
)

// openTarget attaches to the game. A PID pins the target directly;
// otherwise the process is located by its exact window title.
func openTarget(opts targetOptions) (process.Process, error) {
	if opts.pid > 0 {
		return process_windows.NewWithPID(process.ProcessID(opts.pid))
	}

	return process_windows.OpenProcessByWindowTitle(opts.title)
}
