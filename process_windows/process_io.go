//go:build windows

package process_windows

import (
	"fmt"

	"hexbot/process"

	"golang.org/x/sys/windows"
)

// ReadMemory reads memory from the process at the specified address
func (p *WindowsProcess) ReadMemory(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	p.mu.Lock()
	handle := p.handle
	p.mu.Unlock()

	if handle == 0 {
		return nil, process.ErrProcessNotOpen
	}

	buf := make([]byte, size)
	var read uintptr

	err := windows.ReadProcessMemory(handle, uintptr(addr), &buf[0], uintptr(size), &read)
	if err != nil {
		return nil, fmt.Errorf("ReadProcessMemory at %s: %w", addr.ToString(), err)
	}

	if read != uintptr(size) {
		return buf[:read], fmt.Errorf("%w: read %d of %d bytes", process.ErrShortTransfer, read, size)
	}

	return buf, nil
}

// WriteMemory writes data to the process memory at the specified address
func (p *WindowsProcess) WriteMemory(addr process.ProcessMemoryAddress, data []byte) error {
	p.mu.Lock()
	handle := p.handle
	p.mu.Unlock()

	if handle == 0 {
		return process.ErrProcessNotOpen
	}

	if len(data) == 0 {
		return nil
	}

	var written uintptr

	err := windows.WriteProcessMemory(handle, uintptr(addr), &data[0], uintptr(len(data)), &written)
	if err != nil {
		return fmt.Errorf("WriteProcessMemory at %s: %w", addr.ToString(), err)
	}

	if written != uintptr(len(data)) {
		return fmt.Errorf("%w: wrote %d of %d bytes", process.ErrShortTransfer, written, len(data))
	}

	return nil
}
