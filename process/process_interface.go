package process

import (
	"hexbot/process/memory_map"
)

// Process is the interface that defines operations for interacting with a system process
type Process interface {
	// Open opens a process with the given PID for memory operations
	Open(pid ProcessID) error

	// Close closes the process and releases resources
	Close() error

	// GetPID returns the process ID
	GetPID() ProcessID

	// UpdateMemoryMap refreshes the memory map for the process
	UpdateMemoryMap() error

	// IsValidAddress checks if the given memory address is valid and readable
	IsValidAddress(addr ProcessMemoryAddress) bool

	// GetMemoryMap returns a copy of the current memory map
	GetMemoryMap() ([]memory_map.MemoryMapItem, error)

	// ReadMemory reads memory from the process at the specified address
	ReadMemory(addr ProcessMemoryAddress, size ProcessMemorySize) ([]byte, error)

	// WriteMemory writes data to the process memory at the specified address
	WriteMemory(addr ProcessMemoryAddress, data []byte) error

	// Memory scanning operations
	MemoryScanner

	// Typed memory reading operations
	ProcessRead

	// Typed memory writing operations
	ProcessWrite
}

// ReadWriter is the narrow surface consumed by code that drives a single
// already-open process: bulk reads plus typed reads and writes. It exists
// so that layout adapters can be exercised against an in-memory fake.
type ReadWriter interface {
	ReadMemory(addr ProcessMemoryAddress, size ProcessMemorySize) ([]byte, error)
	WriteMemory(addr ProcessMemoryAddress, data []byte) error
	ProcessRead
	ProcessWrite
}

// ProcessRead defines typed read operations for process memory
type ProcessRead interface {
	// ReadUINT8 reads an unsigned 8-bit integer from the specified address
	ReadUINT8(addr ProcessMemoryAddress) (uint8, error)

	// ReadUINT16 reads an unsigned 16-bit integer from the specified address
	ReadUINT16(addr ProcessMemoryAddress) (uint16, error)

	// ReadUINT32 reads an unsigned 32-bit integer from the specified address
	ReadUINT32(addr ProcessMemoryAddress) (uint32, error)

	// ReadUINT64 reads an unsigned 64-bit integer from the specified address
	ReadUINT64(addr ProcessMemoryAddress) (uint64, error)

	// ReadBlob reads a blob of memory from the specified address with the given size
	ReadBlob(addr ProcessMemoryAddress, size ProcessMemorySize) (ProcessReadOffset, error)
}

// ProcessWrite defines typed write operations for process memory
type ProcessWrite interface {
	// WriteUINT8 writes an unsigned 8-bit integer to the specified address
	WriteUINT8(addr ProcessMemoryAddress, value uint8) error

	// WriteUINT16 writes an unsigned 16-bit integer to the specified address
	WriteUINT16(addr ProcessMemoryAddress, value uint16) error

	// WriteUINT32 writes an unsigned 32-bit integer to the specified address
	WriteUINT32(addr ProcessMemoryAddress, value uint32) error

	// WriteUINT64 writes an unsigned 64-bit integer to the specified address
	WriteUINT64(addr ProcessMemoryAddress, value uint64) error
}

// ProcessReadOffset combines typed reads with offset-relative decoding
type ProcessReadOffset interface {
	ProcessRead
	ProcessOffset
}

// ProcessOffset defines typed decoding relative to a captured buffer's base
type ProcessOffset interface {
	// Data returns the raw data read from the process memory
	Data() []byte

	// OffsetUINT8 decodes an unsigned 8-bit integer at the given offset from the buffer base
	OffsetUINT8(offset ProcessMemoryAddress) (uint8, error)

	// OffsetUINT16 decodes an unsigned 16-bit integer at the given offset from the buffer base
	OffsetUINT16(offset ProcessMemoryAddress) (uint16, error)

	// OffsetUINT32 decodes an unsigned 32-bit integer at the given offset from the buffer base
	OffsetUINT32(offset ProcessMemoryAddress) (uint32, error)

	// OffsetUINT64 decodes an unsigned 64-bit integer at the given offset from the buffer base
	OffsetUINT64(offset ProcessMemoryAddress) (uint64, error)

	// OffsetBlob re-slices the buffer at the given offset with the given size
	OffsetBlob(offset ProcessMemoryAddress, size ProcessMemorySize) (ProcessReadOffset, error)
}

// MemoryScanner defines operations for searching patterns in process memory
type MemoryScanner interface {
	// Scan searches for a pattern in process memory
	Scan(aob AOB) ([]ProcessMemoryAddress, error)

	// ScanFirst searches for the first occurrence of a pattern in process memory
	ScanFirst(aob AOB) (ProcessMemoryAddress, error)
}
