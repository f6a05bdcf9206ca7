package memory_map

import (
	"fmt"
	"sort"
)

// MemoryMapItem represents a memory region in a process's address space
type MemoryMapItem struct {
	Address uint64 // The starting address of the memory region
	Size    uint   // The size of the memory region in bytes
	Perms   string // Permissions (e.g., "r-xp" for read, execute, private)
}

// String returns a string representation of the memory map item
func (mmItem MemoryMapItem) String() string {
	return fmt.Sprintf("Address: %x, Size: %d, Perms: %s", mmItem.Address, mmItem.Size, mmItem.Perms)
}

func (mmItem MemoryMapItem) IsReadable() bool {
	return len(mmItem.Perms) > 0 && mmItem.Perms[0] == 'r'
}

func (mmItem MemoryMapItem) IsWritable() bool {
	return len(mmItem.Perms) > 1 && mmItem.Perms[1] == 'w'
}

// FindRegion returns the region containing addr, or nil. The map must be
// sorted by Address.
func FindRegion(addr uint64, memoryMap []MemoryMapItem) *MemoryMapItem {
	i := sort.Search(len(memoryMap), func(i int) bool {
		return memoryMap[i].Address+uint64(memoryMap[i].Size) > addr
	})
	if i < len(memoryMap) && memoryMap[i].Address <= addr {
		return &memoryMap[i]
	}

	return nil
}

// IsValidAddress checks if an address is within any mapped memory region.
// The map must be sorted by Address.
func IsValidAddress(addr uint64, memoryMap []MemoryMapItem) bool {
	return FindRegion(addr, memoryMap) != nil
}
