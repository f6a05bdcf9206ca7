//go:build linux

package process_linux

import (
	"encoding/binary"

	"hexbot/process"
	"hexbot/process_blob"
)

// ReadUINT8 reads an unsigned 8-bit integer from the specified address
func (p *LinuxProcess) ReadUINT8(addr process.ProcessMemoryAddress) (uint8, error) {
	data, err := p.ReadMemory(addr, 1)
	if err != nil {
		return 0, err
	}
	return data[0], nil
}

// ReadUINT16 reads an unsigned 16-bit integer from the specified address
func (p *LinuxProcess) ReadUINT16(addr process.ProcessMemoryAddress) (uint16, error) {
	data, err := p.ReadMemory(addr, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(data), nil
}

// ReadUINT32 reads an unsigned 32-bit integer from the specified address
func (p *LinuxProcess) ReadUINT32(addr process.ProcessMemoryAddress) (uint32, error) {
	data, err := p.ReadMemory(addr, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(data), nil
}

// ReadUINT64 reads an unsigned 64-bit integer from the specified address
func (p *LinuxProcess) ReadUINT64(addr process.ProcessMemoryAddress) (uint64, error) {
	data, err := p.ReadMemory(addr, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(data), nil
}

// ReadBlob reads a blob of memory from the specified address with the given size
func (p *LinuxProcess) ReadBlob(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) (process.ProcessReadOffset, error) {
	data, err := p.ReadMemory(addr, size)
	if err != nil {
		return nil, err
	}

	return process_blob.NewProcessBlob(addr, data), nil
}
