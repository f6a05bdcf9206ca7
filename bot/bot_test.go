package bot

import (
	"encoding/binary"
	"errors"
	"testing"

	"hexbot/hexagon"
	"hexbot/process"
	"hexbot/process_blob"
)

// stubMemory is a sparse process.ReadWriter; unset bytes read as zero
type stubMemory struct {
	bytes       map[process.ProcessMemoryAddress]byte
	writes      int
	shortReadAt process.ProcessMemoryAddress
}

func newStubMemory() *stubMemory {
	return &stubMemory{bytes: make(map[process.ProcessMemoryAddress]byte)}
}

func (s *stubMemory) poke32(addr process.ProcessMemoryAddress, value uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], value)
	for i, b := range buf {
		s.bytes[addr+process.ProcessMemoryAddress(i)] = b
	}
}

func (s *stubMemory) peek32(addr process.ProcessMemoryAddress) uint32 {
	var buf [4]byte
	for i := range buf {
		buf[i] = s.bytes[addr+process.ProcessMemoryAddress(i)]
	}
	return binary.LittleEndian.Uint32(buf[:])
}

func (s *stubMemory) ReadMemory(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	if s.shortReadAt != 0 && addr == s.shortReadAt {
		return nil, process.ErrShortTransfer
	}
	data := make([]byte, size)
	for i := range data {
		data[i] = s.bytes[addr+process.ProcessMemoryAddress(i)]
	}
	return data, nil
}

func (s *stubMemory) WriteMemory(addr process.ProcessMemoryAddress, data []byte) error {
	s.writes++
	for i, b := range data {
		s.bytes[addr+process.ProcessMemoryAddress(i)] = b
	}
	return nil
}

func (s *stubMemory) ReadUINT8(addr process.ProcessMemoryAddress) (uint8, error) {
	data, err := s.ReadMemory(addr, 1)
	if err != nil {
		return 0, err
	}
	return data[0], nil
}

func (s *stubMemory) ReadUINT16(addr process.ProcessMemoryAddress) (uint16, error) {
	data, err := s.ReadMemory(addr, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(data), nil
}

func (s *stubMemory) ReadUINT32(addr process.ProcessMemoryAddress) (uint32, error) {
	data, err := s.ReadMemory(addr, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(data), nil
}

func (s *stubMemory) ReadUINT64(addr process.ProcessMemoryAddress) (uint64, error) {
	data, err := s.ReadMemory(addr, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(data), nil
}

func (s *stubMemory) ReadBlob(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) (process.ProcessReadOffset, error) {
	data, err := s.ReadMemory(addr, size)
	if err != nil {
		return nil, err
	}
	return process_blob.NewProcessBlob(addr, data), nil
}

func (s *stubMemory) WriteUINT8(addr process.ProcessMemoryAddress, value uint8) error {
	return s.WriteMemory(addr, []byte{value})
}

func (s *stubMemory) WriteUINT16(addr process.ProcessMemoryAddress, value uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], value)
	return s.WriteMemory(addr, buf[:])
}

func (s *stubMemory) WriteUINT32(addr process.ProcessMemoryAddress, value uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], value)
	return s.WriteMemory(addr, buf[:])
}

func (s *stubMemory) WriteUINT64(addr process.ProcessMemoryAddress, value uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], value)
	return s.WriteMemory(addr, buf[:])
}

var _ process.ReadWriter = (*stubMemory)(nil)

const stubBase = 0x400000

func newStubGame(t *testing.T) (*hexagon.Game, *stubMemory, hexagon.Offsets) {
	t.Helper()

	mem := newStubMemory()
	offsets := hexagon.DefaultOffsets()
	mem.poke32(offsets.BasePointer, stubBase)
	mem.poke32(stubBase+offsets.NumSlots, 6)

	game, err := hexagon.NewGame(mem, offsets)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return game, mem, offsets
}

func (s *stubMemory) pokeWall(offsets hexagon.Offsets, index uint32, w hexagon.Wall) {
	addr := stubBase + offsets.FirstWall + process.ProcessMemoryAddress(index)*hexagon.WallSize
	s.poke32(addr, w.Slot)
	s.poke32(addr+4, w.Distance)
	if w.Enabled {
		s.bytes[addr+8] = 1
	}
}

func TestStepMovesPlayerToSafestSlot(t *testing.T) {
	game, mem, offsets := newStubGame(t)

	mem.poke32(stubBase+offsets.NumWalls, 2)
	mem.pokeWall(offsets, 0, hexagon.Wall{Slot: 0, Distance: 50, Enabled: true})
	mem.pokeWall(offsets, 1, hexagon.Wall{Slot: 3, Distance: 200, Enabled: true})

	target, worldAngle, acted, err := New(game, 0).Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !acted {
		t.Fatal("expected the cycle to act")
	}
	if target != 1 {
		t.Errorf("target slot = %d, want 1", target)
	}
	if worldAngle != 0 {
		t.Errorf("world angle = %d, want 0", worldAngle)
	}

	// Safest slot is 1: angle 360/6*1 + 180/6 = 90, in both fields
	if got := mem.peek32(stubBase + offsets.PlayerAngle); got != 90 {
		t.Errorf("player angle = %d, want 90", got)
	}
	if got := mem.peek32(stubBase + offsets.PlayerAngle2); got != 90 {
		t.Errorf("player angle copy = %d, want 90", got)
	}
}

func TestStepSkipsWhenNoWalls(t *testing.T) {
	game, mem, _ := newStubGame(t)

	_, _, acted, err := New(game, 0).Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if acted {
		t.Error("expected the cycle to skip")
	}

	if mem.writes != 0 {
		t.Errorf("expected no writes on an empty cycle, got %d", mem.writes)
	}
}

func TestStepSkipsWhenAllWallsDisabled(t *testing.T) {
	game, mem, offsets := newStubGame(t)

	mem.poke32(stubBase+offsets.NumWalls, 2)
	mem.pokeWall(offsets, 0, hexagon.Wall{Slot: 0, Distance: 50, Enabled: false})
	mem.pokeWall(offsets, 1, hexagon.Wall{Slot: 3, Distance: 200, Enabled: false})

	_, _, acted, err := New(game, 0).Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if acted {
		t.Error("expected the cycle to skip")
	}

	if mem.writes != 0 {
		t.Errorf("expected no writes when every wall is disabled, got %d", mem.writes)
	}
}

func TestStepAbortsOnShortRead(t *testing.T) {
	game, mem, offsets := newStubGame(t)

	mem.poke32(stubBase+offsets.NumWalls, 3)
	mem.shortReadAt = stubBase + offsets.FirstWall

	_, _, _, err := New(game, 0).Step()
	if !errors.Is(err, process.ErrShortTransfer) {
		t.Fatalf("expected short transfer error, got %v", err)
	}

	if mem.writes != 0 {
		t.Errorf("expected no writes after a failed refresh, got %d", mem.writes)
	}
}
