//go:build linux

package process_linux

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"hexbot/process"
)

// LinuxProcessFinder implements the process.ProcessFinder interface
type LinuxProcessFinder struct{}

// NewProcessFinder creates a new LinuxProcessFinder
func NewProcessFinder() process.ProcessFinder {
	return &LinuxProcessFinder{}
}

// FindProcess finds a process by name and returns its PID
func FindProcess(name string) (process.ProcessID, error) {
	finder := NewProcessFinder()
	processes, err := finder.FindProcessByName(name)
	if err != nil {
		return 0, err
	}

	if len(processes) == 0 {
		return 0, fmt.Errorf("no process found with name '%s'", name)
	}

	return processes[0].PID, nil
}

// FindProcessByPID finds a process by its PID
func (f *LinuxProcessFinder) FindProcessByPID(pid process.ProcessID) (*process.ProcessInfo, error) {
	procPath := fmt.Sprintf("/proc/%d", pid)

	if _, err := os.Stat(procPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("process with PID %d does not exist", pid)
	}

	return getProcessInfo(pid)
}

// FindProcessByName finds processes by their name (exact match).
// The name is matched against both comm and the exe basename, since
// comm truncates long names at 15 characters.
func (f *LinuxProcessFinder) FindProcessByName(name string) ([]process.ProcessInfo, error) {
	all, err := findProcessesByNamePattern("^" + regexp.QuoteMeta(name) + "$")
	if err != nil {
		return nil, err
	}
	if len(all) > 0 {
		return all, nil
	}

	return filterProcesses(func(info *process.ProcessInfo) bool {
		return info.Exe != "" && filepath.Base(info.Exe) == name
	})
}

// FindProcessByNamePattern finds processes by their name (pattern match)
func (f *LinuxProcessFinder) FindProcessByNamePattern(pattern string) ([]process.ProcessInfo, error) {
	return findProcessesByNamePattern(pattern)
}

// FindAllProcesses returns information about all running processes
func (f *LinuxProcessFinder) FindAllProcesses() ([]process.ProcessInfo, error) {
	return filterProcesses(func(*process.ProcessInfo) bool { return true })
}

// FindProcessByCommandLine finds processes that have a specific argument in
// their command line. This is how a game started through Wine or Proton is
// located: its exe name only appears as an argument of the loader process.
func (f *LinuxProcessFinder) FindProcessByCommandLine(arg string) ([]process.ProcessInfo, error) {
	re, err := regexp.Compile(regexp.QuoteMeta(arg))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}

	return filterProcesses(func(info *process.ProcessInfo) bool {
		for _, a := range info.Cmdline {
			if re.MatchString(a) {
				return true
			}
		}
		return false
	})
}

// Helper function to find processes by name pattern
func findProcessesByNamePattern(pattern string) ([]process.ProcessInfo, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}

	return filterProcesses(func(info *process.ProcessInfo) bool {
		return re.MatchString(info.Name)
	})
}

// filterProcesses walks /proc and returns info for every process the
// predicate accepts
func filterProcesses(keep func(*process.ProcessInfo) bool) ([]process.ProcessInfo, error) {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		return nil, fmt.Errorf("failed to read /proc: %w", err)
	}

	var results []process.ProcessInfo

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		pid, err := strconv.Atoi(entry.Name())
		if err != nil {
			// Not a PID directory
			continue
		}

		info, err := getProcessInfo(process.ProcessID(pid))
		if err != nil {
			// Process may have terminated while we were reading
			continue
		}

		if keep(info) {
			results = append(results, *info)
		}
	}

	return results, nil
}

// Helper function to get process information
func getProcessInfo(pid process.ProcessID) (*process.ProcessInfo, error) {
	procPath := fmt.Sprintf("/proc/%d", pid)

	// Read process name from /proc/<pid>/comm
	nameBytes, err := os.ReadFile(filepath.Join(procPath, "comm"))
	if err != nil {
		return nil, fmt.Errorf("failed to read process name: %w", err)
	}
	name := strings.TrimSpace(string(nameBytes))

	// Read executable path from /proc/<pid>/exe symlink
	exe, err := os.Readlink(filepath.Join(procPath, "exe"))
	if err != nil {
		// Some processes don't have an exe (e.g., kernel threads)
		exe = ""
	}

	// Read the command line from /proc/<pid>/cmdline
	cmdlineBytes, err := os.ReadFile(filepath.Join(procPath, "cmdline"))
	if err != nil {
		return nil, fmt.Errorf("failed to read process cmdline: %w", err)
	}

	// Arguments are NULL separated
	var cmdline []string
	if len(cmdlineBytes) > 0 {
		if cmdlineBytes[len(cmdlineBytes)-1] == 0 {
			cmdlineBytes = cmdlineBytes[:len(cmdlineBytes)-1]
		}

		for _, arg := range bytes.Split(cmdlineBytes, []byte{0}) {
			cmdline = append(cmdline, string(arg))
		}
	}

	// Read PPid from /proc/<pid>/status
	var ppid process.ProcessID
	if statusBytes, err := os.ReadFile(filepath.Join(procPath, "status")); err == nil {
		for _, line := range strings.Split(string(statusBytes), "\n") {
			parts := strings.SplitN(line, ":", 2)
			if len(parts) != 2 || strings.TrimSpace(parts[0]) != "PPid" {
				continue
			}
			if ppidVal, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
				ppid = process.ProcessID(ppidVal)
			}
			break
		}
	}

	return &process.ProcessInfo{
		PID:     pid,
		PPID:    ppid,
		Name:    name,
		Exe:     exe,
		Cmdline: cmdline,
	}, nil
}
