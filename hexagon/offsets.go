// Package hexagon maps the fixed memory layout of a running Super Hexagon
// process onto semantic state: slot count, incoming walls, the player's
// angular position and the world rotation. Every layout constant lives in
// this package; nothing outside it knows a byte offset.
package hexagon

import (
	"hexbot/process"
)

// Offsets describes where the game keeps its state. BasePointer is the one
// absolute location: it holds the address of the data segment everything
// else is relative to. The game ships without ASLR, so these resolve the
// same way on every run of a given build.
type Offsets struct {
	BasePointer process.ProcessMemoryAddress

	NumSlots       process.ProcessMemoryAddress
	NumWalls       process.ProcessMemoryAddress
	FirstWall      process.ProcessMemoryAddress
	PlayerAngle    process.ProcessMemoryAddress
	PlayerAngle2   process.ProcessMemoryAddress
	MouseDownLeft  process.ProcessMemoryAddress
	MouseDownRight process.ProcessMemoryAddress
	MouseDown      process.ProcessMemoryAddress
	WorldAngle     process.ProcessMemoryAddress
}

// DefaultOffsets returns the layout of the known retail build. A game
// update moves these; use a scan (cmd/hexbot -discover) to find the new
// BasePointer location and override.
func DefaultOffsets() Offsets {
	return Offsets{
		BasePointer: 0x694B00,

		NumSlots:       0x1BC,
		NumWalls:       0x2930,
		FirstWall:      0x220,
		PlayerAngle:    0x2958,
		PlayerAngle2:   0x2954,
		MouseDownLeft:  0x42858,
		MouseDownRight: 0x4285A,
		MouseDown:      0x42C45,
		WorldAngle:     0x1AC,
	}
}
