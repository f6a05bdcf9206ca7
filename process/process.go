// Package process defines the interfaces and shared types for reading
// and writing the memory of a foreign process. Platform implementations
// live in process_linux and process_windows.
package process

import "errors"

var (
	// ErrAddressNotMapped is returned when a memory address is not found within any mapped region of a process.
	ErrAddressNotMapped = errors.New("address not mapped")

	// ErrProcessNotOpen is returned when an operation requiring an open process is attempted
	// before the process has been successfully opened or after it has been closed.
	ErrProcessNotOpen = errors.New("process not open")

	// ErrShortTransfer is returned when a read or write moved fewer bytes
	// than requested. The caller cannot tell a transient fault from a stale
	// layout assumption, so this is treated as fatal upstream.
	ErrShortTransfer = errors.New("short memory transfer")
)
