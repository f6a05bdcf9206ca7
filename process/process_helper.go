package process

// ProcessHelper provides utility functions for opening processes
type ProcessHelper interface {
	// New creates a new Process instance
	New() Process

	// NewWithPID creates a new Process instance and opens it with the given PID
	NewWithPID(pid ProcessID) (Process, error)

	// OpenProcessByName opens a process by its name (returns the first match)
	OpenProcessByName(name string) (Process, error)

	// OpenProcessByPattern opens a process by its name pattern (returns the first match)
	OpenProcessByPattern(pattern string) (Process, error)

	// OpenProcessByCommandLine opens a process by searching for a command line argument
	OpenProcessByCommandLine(arg string) (Process, error)
}
