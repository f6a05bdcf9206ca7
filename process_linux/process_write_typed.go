//go:build linux

package process_linux

import (
	"encoding/binary"

	"hexbot/process"
)

// WriteUINT8 writes an unsigned 8-bit integer to the specified address
func (p *LinuxProcess) WriteUINT8(addr process.ProcessMemoryAddress, value uint8) error {
	return p.WriteMemory(addr, []byte{value})
}

// WriteUINT16 writes an unsigned 16-bit integer to the specified address
func (p *LinuxProcess) WriteUINT16(addr process.ProcessMemoryAddress, value uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], value)
	return p.WriteMemory(addr, buf[:])
}

// WriteUINT32 writes an unsigned 32-bit integer to the specified address
func (p *LinuxProcess) WriteUINT32(addr process.ProcessMemoryAddress, value uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], value)
	return p.WriteMemory(addr, buf[:])
}

// WriteUINT64 writes an unsigned 64-bit integer to the specified address
func (p *LinuxProcess) WriteUINT64(addr process.ProcessMemoryAddress, value uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], value)
	return p.WriteMemory(addr, buf[:])
}
