package process

import (
	"fmt"
)

// ProcessMemoryAddress represents an absolute address within a target
// process's virtual address space
type ProcessMemoryAddress uint64

func (pma ProcessMemoryAddress) ToString() string {
	return fmt.Sprintf("0x%X", uint64(pma))
}

// ProcessMemorySize represents a size of memory region
type ProcessMemorySize uint

func (pms ProcessMemorySize) ToString() string {
	return fmt.Sprintf("%d bytes", uint(pms))
}

// AOB (Array of Bytes) represents a pattern to search for in memory
type AOB struct {
	Pattern []byte // The byte pattern to search for
	Mask    []byte // 0xFF means exact match, 0x00 means wildcard
}

// IsValid checks if the AOB pattern is valid
func (aob AOB) IsValid() bool {
	return len(aob.Pattern) == len(aob.Mask)
}

func NewAOB(pattern, mask []byte) (AOB, error) {
	if len(pattern) != len(mask) {
		return AOB{}, fmt.Errorf("pattern and mask must be of the same length")
	}
	return AOB{Pattern: pattern, Mask: mask}, nil
}

// ExactAOB builds a pattern that matches value byte for byte.
func ExactAOB(value []byte) AOB {
	mask := make([]byte, len(value))
	for i := range mask {
		mask[i] = 0xFF
	}
	return AOB{Pattern: value, Mask: mask}
}
