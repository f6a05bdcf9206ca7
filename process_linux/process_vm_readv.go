//go:build linux

package process_linux

import (
	"fmt"
	"unsafe"

	"hexbot/process"

	"golang.org/x/sys/unix"
)

// process_vm_readv uses the process_vm_readv syscall to read memory from another process
func process_vm_readv(
	pid process.ProcessID,
	remoteAddr process.ProcessMemoryAddress,
	bytesToRead process.ProcessMemorySize,
) ([]byte, error) {
	localBuf := make([]byte, bytesToRead)

	// Create iovec for local buffer
	localIov := unix.Iovec{
		Base: &localBuf[0],
		Len:  uint64(bytesToRead),
	}

	// Create iovec for remote buffer
	remoteIov := unix.RemoteIovec{
		Base: uintptr(remoteAddr),
		Len:  int(bytesToRead),
	}

	// Call process_vm_readv
	n, _, errno := unix.Syscall6(
		unix.SYS_PROCESS_VM_READV,
		uintptr(pid),                        // Remote process PID
		uintptr(unsafe.Pointer(&localIov)),  // Local iovec
		uintptr(1),                          // Number of local iovecs
		uintptr(unsafe.Pointer(&remoteIov)), // Remote iovec
		uintptr(1),                          // Number of remote iovecs
		uintptr(0),                          // Flags (reserved for future use)
	)

	if errno != 0 {
		return nil, fmt.Errorf("process_vm_readv failed: %s (errno: %d)", errno.Error(), errno)
	}

	// A partial transfer means the layout assumption is stale; callers
	// must not decode from a partial buffer.
	if int(n) != int(bytesToRead) {
		return localBuf[:n], fmt.Errorf("%w: read %d of %d bytes", process.ErrShortTransfer, n, bytesToRead)
	}

	return localBuf, nil
}

// ReadMemory reads memory from the process at the specified address
func (p *LinuxProcess) ReadMemory(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	p.mu.Lock()
	pid := p.pid
	valid := p.isValidAddressInternal(addr)
	p.mu.Unlock()

	if pid == 0 {
		return nil, process.ErrProcessNotOpen
	}

	if !valid {
		return nil, process.ErrAddressNotMapped
	}

	// Perform the system call without holding the lock
	data, err := process_vm_readv(pid, addr, size)
	if err != nil {
		return nil, fmt.Errorf("process_vm_readv: failed to read process memory: %w", err)
	}

	return data, nil
}
