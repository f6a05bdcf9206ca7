package memory_map

import (
	"testing"
)

func sampleMap() []MemoryMapItem {
	return []MemoryMapItem{
		{Address: 0x400000, Size: 0x1000, Perms: "r-xp"},
		{Address: 0x600000, Size: 0x2000, Perms: "rw-p"},
		{Address: 0x700000, Size: 0x1000, Perms: "---p"},
	}
}

func TestFindRegion(t *testing.T) {
	mm := sampleMap()

	if r := FindRegion(0x400000, mm); r == nil || r.Address != 0x400000 {
		t.Errorf("start of first region: got %v", r)
	}
	if r := FindRegion(0x400FFF, mm); r == nil || r.Address != 0x400000 {
		t.Errorf("end of first region: got %v", r)
	}
	if r := FindRegion(0x401000, mm); r != nil {
		t.Errorf("one past first region: got %v", r)
	}
	if r := FindRegion(0x601234, mm); r == nil || r.Address != 0x600000 {
		t.Errorf("inside second region: got %v", r)
	}
	if r := FindRegion(0x100, mm); r != nil {
		t.Errorf("below all regions: got %v", r)
	}
}

func TestIsValidAddress(t *testing.T) {
	mm := sampleMap()

	if !IsValidAddress(0x600100, mm) {
		t.Error("mapped address reported invalid")
	}
	if IsValidAddress(0x500000, mm) {
		t.Error("gap between regions reported valid")
	}
}

func TestPerms(t *testing.T) {
	mm := sampleMap()

	if !mm[0].IsReadable() || mm[0].IsWritable() {
		t.Errorf("r-xp perms misread: %+v", mm[0])
	}
	if !mm[1].IsWritable() {
		t.Errorf("rw-p perms misread: %+v", mm[1])
	}
	if mm[2].IsReadable() {
		t.Errorf("---p perms misread: %+v", mm[2])
	}
}
