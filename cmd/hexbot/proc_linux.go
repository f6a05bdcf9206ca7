//go:build linux

package main

import (
	"fmt"

	"hexbot/process"
	"hexbot/process_linux"
)

// openTarget attaches to the game. A PID pins the target directly;
// otherwise the process name is tried first and the command line second,
// since a game running under Wine or Proton only shows its exe name as a
// loader argument.
func openTarget(opts targetOptions) (process.Process, error) {
	if opts.pid > 0 {
		return process_linux.NewWithPID(process.ProcessID(opts.pid))
	}

	helper := process_linux.NewHelper()

	if proc, err := helper.OpenProcessByName(opts.name); err == nil {
		return proc, nil
	}

	arg := opts.cmdline
	if arg == "" {
		arg = opts.name
	}

	proc, err := helper.OpenProcessByCommandLine(arg)
	if err != nil {
		return nil, fmt.Errorf("no process named %q and no command line containing %q", opts.name, arg)
	}

	return proc, nil
}
