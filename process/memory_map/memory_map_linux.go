//go:build linux

package memory_map

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadMemoryMap reads and parses the memory map for a process from /proc/[pid]/maps
func ReadMemoryMap(pid int) ([]MemoryMapItem, error) {
	file, err := os.Open(fmt.Sprintf("/proc/%d/maps", pid))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ParseMaps(file)
}

// ParseMaps parses /proc/<pid>/maps formatted text. Lines that do not
// look like a mapping are skipped rather than treated as errors.
func ParseMaps(r io.Reader) ([]MemoryMapItem, error) {
	var memoryMap []MemoryMapItem
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		// Parse address range (e.g., "00400000-0040b000")
		addrRange := strings.Split(fields[0], "-")
		if len(addrRange) != 2 {
			continue
		}

		startAddr, err := strconv.ParseUint(addrRange[0], 16, 64)
		if err != nil {
			continue
		}

		endAddr, err := strconv.ParseUint(addrRange[1], 16, 64)
		if err != nil {
			continue
		}

		memoryMap = append(memoryMap, MemoryMapItem{
			Address: startAddr,
			Size:    uint(endAddr - startAddr),
			Perms:   fields[1],
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return memoryMap, nil
}
