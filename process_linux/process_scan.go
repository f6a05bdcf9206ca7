//go:build linux

package process_linux

import (
	"bytes"
	"errors"
	"fmt"

	"hexbot/process"
)

// Scan searches for the given pattern in the process memory
// and returns all matching addresses
func (p *LinuxProcess) Scan(aob process.AOB) ([]process.ProcessMemoryAddress, error) {
	// Get the memory map to know which regions to scan
	memMap, err := p.GetMemoryMap()
	if err != nil {
		return nil, fmt.Errorf("failed to get memory map: %w", err)
	}

	if len(aob.Pattern) == 0 {
		return nil, fmt.Errorf("empty pattern")
	}

	// If no mask is provided, create a mask of all 0xFF (exact match)
	if len(aob.Mask) == 0 {
		aob.Mask = bytes.Repeat([]byte{0xFF}, len(aob.Pattern))
	} else if len(aob.Mask) != len(aob.Pattern) {
		return nil, fmt.Errorf("mask length (%d) doesn't match pattern length (%d)",
			len(aob.Mask), len(aob.Pattern))
	}

	p.log.Infoln("Starting memory scan for pattern of length", len(aob.Pattern))

	var results []process.ProcessMemoryAddress

	// Scan each memory region
	for _, region := range memMap {
		if !region.IsReadable() {
			continue
		}

		data, err := p.ReadMemory(process.ProcessMemoryAddress(region.Address), process.ProcessMemorySize(region.Size))
		if err != nil {
			if errors.Is(err, process.ErrAddressNotMapped) {
				continue
			}

			// Some regions fail to read due to permissions, just log and continue
			p.log.Debugln("Failed to read memory region at", fmt.Sprintf("%x", region.Address), err)
			continue
		}

		// Convert relative offsets to absolute addresses
		for _, offset := range findPatternMatches(data, aob.Pattern, aob.Mask) {
			results = append(results, process.ProcessMemoryAddress(region.Address+uint64(offset)))
		}
	}

	p.log.Infoln("Scan complete, found", len(results), "matches")
	return results, nil
}

// ScanFirst searches for the first occurrence of the pattern
func (p *LinuxProcess) ScanFirst(aob process.AOB) (process.ProcessMemoryAddress, error) {
	results, err := p.Scan(aob)
	if err != nil {
		return 0, err
	}

	if len(results) == 0 {
		return 0, fmt.Errorf("pattern not found")
	}

	return results[0], nil
}

// findPatternMatches finds all occurrences of the pattern in the data
// Returns the offsets where matches were found
func findPatternMatches(data, pattern, mask []byte) []uint {
	if len(data) < len(pattern) {
		return nil
	}

	var matches []uint

	for i := 0; i <= len(data)-len(pattern); i++ {
		matched := true

		for j := 0; j < len(pattern); j++ {
			// Mask byte 0 is a wildcard
			if mask[j] == 0 {
				continue
			}

			if data[i+j]&mask[j] != pattern[j]&mask[j] {
				matched = false
				break
			}
		}

		if matched {
			matches = append(matches, uint(i))
		}
	}

	return matches
}
