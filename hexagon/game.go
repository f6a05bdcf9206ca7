package hexagon

import (
	"errors"
	"fmt"

	"hexbot/process"
)

// ErrBaseNotResolved is returned when the base pointer location holds
// zero. The game is not in the expected state, or the offsets belong to a
// different build.
var ErrBaseNotResolved = errors.New("game base pointer resolved to zero")

// Game exposes the simulation state of an open Super Hexagon process. All
// reads and writes go through a process.ReadWriter; the resolved base is
// captured once at construction.
type Game struct {
	mem     process.ReadWriter
	offsets Offsets
	base    process.ProcessMemoryAddress
}

// Snapshot is a one-cycle view of the simulation. It is rebuilt from
// scratch every cycle and never mutated.
type Snapshot struct {
	NumSlots    uint32
	PlayerAngle uint32
	WorldAngle  uint32
	Walls       []Wall
}

// NewGame resolves the game's data segment through the base pointer and
// returns an adapter bound to it.
func NewGame(mem process.ReadWriter, offsets Offsets) (*Game, error) {
	base, err := mem.ReadUINT32(offsets.BasePointer)
	if err != nil {
		return nil, fmt.Errorf("resolving base pointer at %s: %w", offsets.BasePointer.ToString(), err)
	}

	if base == 0 {
		return nil, ErrBaseNotResolved
	}

	return &Game{
		mem:     mem,
		offsets: offsets,
		base:    process.ProcessMemoryAddress(base),
	}, nil
}

// Base returns the resolved data segment address
func (g *Game) Base() process.ProcessMemoryAddress {
	return g.base
}

// NumSlots returns the number of angular slots currently in play. The game
// varies this at runtime (4, 5 and 6 slot stages).
func (g *Game) NumSlots() (uint32, error) {
	return g.mem.ReadUINT32(g.base + g.offsets.NumSlots)
}

// NumWalls returns the number of live wall records
func (g *Game) NumWalls() (uint32, error) {
	return g.mem.ReadUINT32(g.base + g.offsets.NumWalls)
}

// Walls reads the current wall table. The whole table is bulk-read in one
// transfer and decoded record by record; a short read fails the refresh
// rather than yielding a partial table.
func (g *Game) Walls() ([]Wall, error) {
	count, err := g.NumWalls()
	if err != nil {
		return nil, fmt.Errorf("reading wall count: %w", err)
	}

	if count == 0 {
		return nil, nil
	}

	raw, err := g.mem.ReadMemory(g.base+g.offsets.FirstWall, process.ProcessMemorySize(count)*WallSize)
	if err != nil {
		return nil, fmt.Errorf("reading %d wall records: %w", count, err)
	}

	blob := newWallBlob(raw)
	walls := make([]Wall, 0, count)
	for i := uint32(0); i < count; i++ {
		wall, err := decodeWall(blob, process.ProcessMemoryAddress(i)*WallSize)
		if err != nil {
			return nil, fmt.Errorf("decoding wall %d: %w", i, err)
		}
		walls = append(walls, wall)
	}

	return walls, nil
}

// PlayerAngle returns the player's angular position in degrees
func (g *Game) PlayerAngle() (uint32, error) {
	return g.mem.ReadUINT32(g.base + g.offsets.PlayerAngle)
}

// PlayerSlot converts the player's current angle back to a slot index
func (g *Game) PlayerSlot() (uint32, error) {
	numSlots, err := g.NumSlots()
	if err != nil {
		return 0, err
	}
	if numSlots == 0 {
		return 0, errors.New("slot count is zero")
	}

	angle, err := g.PlayerAngle()
	if err != nil {
		return 0, err
	}

	return uint32(float32(angle) / 360.0 * float32(numSlots)), nil
}

// SetPlayerSlot teleports the player to the angular center of the given
// slot. The game keeps two synchronized copies of the player angle and
// reads either depending on internal sub-state, so both are written every
// time; writing only one leaves the next snapshot inconsistent.
func (g *Game) SetPlayerSlot(slot uint32) error {
	numSlots, err := g.NumSlots()
	if err != nil {
		return fmt.Errorf("reading slot count: %w", err)
	}
	if numSlots == 0 {
		return errors.New("slot count is zero")
	}

	// Integer degrees, matching the game's own angular units
	angle := 360/numSlots*(slot%numSlots) + 180/numSlots

	if err := g.mem.WriteUINT32(g.base+g.offsets.PlayerAngle, angle); err != nil {
		return fmt.Errorf("writing player angle: %w", err)
	}
	if err := g.mem.WriteUINT32(g.base+g.offsets.PlayerAngle2, angle); err != nil {
		return fmt.Errorf("writing player angle copy: %w", err)
	}

	return nil
}

// WorldAngle returns the rotation offset of the entire wall field
func (g *Game) WorldAngle() (uint32, error) {
	return g.mem.ReadUINT32(g.base + g.offsets.WorldAngle)
}

// SetWorldAngle overwrites the world rotation. Diagnostic use only.
func (g *Game) SetWorldAngle(angle uint32) error {
	return g.mem.WriteUINT32(g.base+g.offsets.WorldAngle, angle)
}

// StartMovingLeft presses the left input in game memory. Part of the
// incremental-movement surface; the default policy teleports instead.
func (g *Game) StartMovingLeft() error {
	if err := g.mem.WriteUINT8(g.base+g.offsets.MouseDownLeft, 1); err != nil {
		return err
	}
	return g.mem.WriteUINT8(g.base+g.offsets.MouseDown, 1)
}

// StartMovingRight presses the right input in game memory
func (g *Game) StartMovingRight() error {
	if err := g.mem.WriteUINT8(g.base+g.offsets.MouseDownRight, 1); err != nil {
		return err
	}
	return g.mem.WriteUINT8(g.base+g.offsets.MouseDown, 1)
}

// ReleaseInput clears all three simulated input flags
func (g *Game) ReleaseInput() error {
	if err := g.mem.WriteUINT8(g.base+g.offsets.MouseDownLeft, 0); err != nil {
		return err
	}
	if err := g.mem.WriteUINT8(g.base+g.offsets.MouseDownRight, 0); err != nil {
		return err
	}
	return g.mem.WriteUINT8(g.base+g.offsets.MouseDown, 0)
}

// Snapshot reads one coherent-enough view of the simulation for a decision
// cycle. The game advances between reads; the decision heuristic's safety
// margin absorbs that staleness.
func (g *Game) Snapshot() (*Snapshot, error) {
	numSlots, err := g.NumSlots()
	if err != nil {
		return nil, fmt.Errorf("reading slot count: %w", err)
	}

	playerAngle, err := g.PlayerAngle()
	if err != nil {
		return nil, fmt.Errorf("reading player angle: %w", err)
	}

	worldAngle, err := g.WorldAngle()
	if err != nil {
		return nil, fmt.Errorf("reading world angle: %w", err)
	}

	walls, err := g.Walls()
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		NumSlots:    numSlots,
		PlayerAngle: playerAngle,
		WorldAngle:  worldAngle,
		Walls:       walls,
	}, nil
}
