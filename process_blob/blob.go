// Package process_blob decodes typed values out of a byte buffer captured
// from a foreign process. Fixed-layout records are decoded field by field
// at explicit offsets in little-endian order; nothing is overlaid onto Go
// struct memory.
package process_blob

import (
	"encoding/binary"
	"errors"

	"hexbot/process"
)

type ProcessBlob struct {
	baseaddress process.ProcessMemoryAddress
	data        []byte
}

var _ process.ProcessRead = (*ProcessBlob)(nil)
var _ process.ProcessOffset = (*ProcessBlob)(nil)
var _ process.ProcessReadOffset = (*ProcessBlob)(nil)

func NewProcessBlob(baseAddress process.ProcessMemoryAddress, data []byte) *ProcessBlob {
	return &ProcessBlob{
		baseaddress: baseAddress,
		data:        data,
	}
}

func (p *ProcessBlob) Data() []byte {
	return p.data
}

// Base returns the remote address the buffer was captured from
func (p *ProcessBlob) Base() process.ProcessMemoryAddress {
	return p.baseaddress
}

func (p *ProcessBlob) ReadMemory(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	if addr < p.baseaddress || process.ProcessMemorySize(addr)+size > process.ProcessMemorySize(p.baseaddress)+process.ProcessMemorySize(len(p.data)) {
		return nil, errors.New("address out of bounds")
	}
	offset := addr - p.baseaddress
	return p.data[offset : uint64(offset)+uint64(size)], nil
}

// ReadUINT8 reads an unsigned 8-bit integer from the specified address
func (p *ProcessBlob) ReadUINT8(addr process.ProcessMemoryAddress) (uint8, error) {
	data, err := p.ReadMemory(addr, 1)
	if err != nil {
		return 0, err
	}
	return data[0], nil
}

// ReadUINT16 reads an unsigned 16-bit integer from the specified address
func (p *ProcessBlob) ReadUINT16(addr process.ProcessMemoryAddress) (uint16, error) {
	data, err := p.ReadMemory(addr, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(data), nil
}

// ReadUINT32 reads an unsigned 32-bit integer from the specified address
func (p *ProcessBlob) ReadUINT32(addr process.ProcessMemoryAddress) (uint32, error) {
	data, err := p.ReadMemory(addr, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(data), nil
}

// ReadUINT64 reads an unsigned 64-bit integer from the specified address
func (p *ProcessBlob) ReadUINT64(addr process.ProcessMemoryAddress) (uint64, error) {
	data, err := p.ReadMemory(addr, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(data), nil
}

// ReadBlob reads a blob of memory from the specified address with the given size
func (p *ProcessBlob) ReadBlob(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) (process.ProcessReadOffset, error) {
	if size == 0 {
		return nil, errors.New("zero size blob")
	}

	data, err := p.ReadMemory(addr, size)
	if err != nil {
		return nil, err
	}

	return NewProcessBlob(addr, data[:size]), nil
}

// Offset methods for the process.ProcessOffset interface

// OffsetUINT8 decodes an unsigned 8-bit integer at the given offset from the buffer base
func (p *ProcessBlob) OffsetUINT8(offset process.ProcessMemoryAddress) (uint8, error) {
	return p.ReadUINT8(p.baseaddress + offset)
}

// OffsetUINT16 decodes an unsigned 16-bit integer at the given offset from the buffer base
func (p *ProcessBlob) OffsetUINT16(offset process.ProcessMemoryAddress) (uint16, error) {
	return p.ReadUINT16(p.baseaddress + offset)
}

// OffsetUINT32 decodes an unsigned 32-bit integer at the given offset from the buffer base
func (p *ProcessBlob) OffsetUINT32(offset process.ProcessMemoryAddress) (uint32, error) {
	return p.ReadUINT32(p.baseaddress + offset)
}

// OffsetUINT64 decodes an unsigned 64-bit integer at the given offset from the buffer base
func (p *ProcessBlob) OffsetUINT64(offset process.ProcessMemoryAddress) (uint64, error) {
	return p.ReadUINT64(p.baseaddress + offset)
}

// OffsetBlob re-slices the buffer at the given offset with the given size
func (p *ProcessBlob) OffsetBlob(offset process.ProcessMemoryAddress, size process.ProcessMemorySize) (process.ProcessReadOffset, error) {
	return p.ReadBlob(p.baseaddress+offset, size)
}
