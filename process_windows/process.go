//go:build windows

package process_windows

import (
	"fmt"
	"sort"
	"sync"
	"unsafe"

	"hexbot/process"
	"hexbot/process/memory_map"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"

	"golang.org/x/sys/windows"
)

// Access rights needed for ReadProcessMemory and WriteProcessMemory
const targetAccess = windows.PROCESS_VM_READ |
	windows.PROCESS_VM_WRITE |
	windows.PROCESS_VM_OPERATION |
	windows.PROCESS_QUERY_INFORMATION

// WindowsProcess implements the process.Process interface for Windows systems
type WindowsProcess struct {
	pid    process.ProcessID
	handle windows.Handle
	log    *logger.Logger
	mm     []memory_map.MemoryMapItem
	mu     sync.Mutex
}

// New creates a new WindowsProcess instance
func New() process.Process {
	return &WindowsProcess{
		log: logger.NewLogger(coloransi.Color(coloransi.Red, coloransi.ColorOrange, "process-not-open")),
	}
}

// NewWithPID creates a new WindowsProcess instance and opens it with the given PID
func NewWithPID(pid process.ProcessID) (process.Process, error) {
	p := &WindowsProcess{}
	err := p.Open(pid)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *WindowsProcess) Open(pid process.ProcessID) error {
	handle, err := windows.OpenProcess(targetAccess, false, uint32(pid))
	if err != nil {
		return fmt.Errorf("OpenProcess failed: %w", err)
	}

	p.mu.Lock()
	p.pid = pid
	p.handle = handle
	p.log = logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, fmt.Sprintf("process-%d", pid)))
	p.mu.Unlock()

	if err := p.UpdateMemoryMap(); err != nil {
		p.log.Warn("Failed to initialize memory map: ", err)
	}

	p.log.Infoln("Process opened")
	return nil
}

// Close releases the process handle. The handle is closed exactly once no
// matter how many operations were issued.
func (p *WindowsProcess) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.handle != 0 {
		if err := windows.CloseHandle(p.handle); err != nil {
			return fmt.Errorf("CloseHandle failed: %w", err)
		}
		p.handle = 0
	}

	p.pid = 0
	p.mm = nil
	p.log = logger.NewLogger(coloransi.Color(coloransi.Red, coloransi.ColorOrange, "process-not-open"))

	return nil
}

// GetPID returns the process ID
func (p *WindowsProcess) GetPID() process.ProcessID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pid
}

// UpdateMemoryMap walks the address space with VirtualQueryEx and records
// every committed region
func (p *WindowsProcess) UpdateMemoryMap() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.handle == 0 {
		return process.ErrProcessNotOpen
	}

	var mm []memory_map.MemoryMapItem
	var mbi windows.MemoryBasicInformation

	addr := uintptr(0)
	for {
		err := windows.VirtualQueryEx(p.handle, addr, &mbi, unsafe.Sizeof(mbi))
		if err != nil {
			break
		}

		if mbi.State == windows.MEM_COMMIT {
			mm = append(mm, memory_map.MemoryMapItem{
				Address: uint64(mbi.BaseAddress),
				Size:    uint(mbi.RegionSize),
				Perms:   permsFromProtect(mbi.Protect),
			})
		}

		next := mbi.BaseAddress + mbi.RegionSize
		if next <= addr {
			break
		}
		addr = next
	}

	sort.Slice(mm, func(i, j int) bool {
		return mm[i].Address < mm[j].Address
	})

	p.mm = mm
	return nil
}

func (p *WindowsProcess) IsValidAddress(addr process.ProcessMemoryAddress) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if item := memory_map.FindRegion(uint64(addr), p.mm); item != nil {
		return item.IsReadable()
	}
	return false
}

func (p *WindowsProcess) GetMemoryMap() ([]memory_map.MemoryMapItem, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.handle == 0 {
		return nil, process.ErrProcessNotOpen
	}

	result := make([]memory_map.MemoryMapItem, len(p.mm))
	copy(result, p.mm)
	return result, nil
}

// permsFromProtect converts a PAGE_* protection value into the rwx string
// used by memory_map
func permsFromProtect(protect uint32) string {
	if protect&windows.PAGE_GUARD != 0 {
		return "---p"
	}

	switch {
	case protect&windows.PAGE_EXECUTE_READWRITE != 0,
		protect&windows.PAGE_EXECUTE_WRITECOPY != 0:
		return "rwxp"
	case protect&windows.PAGE_EXECUTE_READ != 0:
		return "r-xp"
	case protect&windows.PAGE_READWRITE != 0,
		protect&windows.PAGE_WRITECOPY != 0:
		return "rw-p"
	case protect&windows.PAGE_READONLY != 0:
		return "r--p"
	default:
		return "---p"
	}
}
