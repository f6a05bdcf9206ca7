package process

// ProcessFinder defines operations for discovering target processes
type ProcessFinder interface {
	// FindProcessByPID finds a process by its PID
	FindProcessByPID(pid ProcessID) (*ProcessInfo, error)

	// FindProcessByName finds processes by their name (exact match)
	FindProcessByName(name string) ([]ProcessInfo, error)

	// FindProcessByNamePattern finds processes by their name (pattern match)
	FindProcessByNamePattern(pattern string) ([]ProcessInfo, error)

	// FindProcessByCommandLine finds processes that have a specific argument in their command line.
	// Games launched through a compatibility layer only carry their own name here.
	FindProcessByCommandLine(arg string) ([]ProcessInfo, error)

	// FindAllProcesses returns information about all running processes
	FindAllProcesses() ([]ProcessInfo, error)
}
