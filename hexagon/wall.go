package hexagon

import (
	"fmt"

	"hexbot/process"
	"hexbot/process_blob"
)

// WallSize is the wire size of one wall record in game memory
const WallSize = 20

// Wall is one incoming hazard: an obstacle occupying an angular slot at a
// radial distance from the center. Records with Distance 0 or Enabled
// false are inert and never considered by the decision step.
type Wall struct {
	Slot     uint32
	Distance uint32
	Enabled  bool

	// Two trailing fields the game keeps per wall that this tool does not
	// interpret
	Unk2 uint32
	Unk3 uint32
}

// newWallBlob wraps a raw wall table read so records can be decoded by
// table-relative offset
func newWallBlob(raw []byte) process.ProcessOffset {
	return process_blob.NewProcessBlob(0, raw)
}

// decodeWall decodes the fixed 20-byte wall record at the given offset of
// a captured buffer. Fields are read individually at explicit byte
// offsets: slot u32 @0, distance u32 @4, enabled u8 @8 (3 reserved bytes
// follow), then the two opaque u32s @12 and @16.
func decodeWall(blob process.ProcessOffset, offset process.ProcessMemoryAddress) (Wall, error) {
	slot, err := blob.OffsetUINT32(offset + 0)
	if err != nil {
		return Wall{}, fmt.Errorf("wall slot: %w", err)
	}

	distance, err := blob.OffsetUINT32(offset + 4)
	if err != nil {
		return Wall{}, fmt.Errorf("wall distance: %w", err)
	}

	enabled, err := blob.OffsetUINT8(offset + 8)
	if err != nil {
		return Wall{}, fmt.Errorf("wall enabled flag: %w", err)
	}

	unk2, err := blob.OffsetUINT32(offset + 12)
	if err != nil {
		return Wall{}, fmt.Errorf("wall trailing field: %w", err)
	}

	unk3, err := blob.OffsetUINT32(offset + 16)
	if err != nil {
		return Wall{}, fmt.Errorf("wall trailing field: %w", err)
	}

	return Wall{
		Slot:     slot,
		Distance: distance,
		Enabled:  enabled != 0,
		Unk2:     unk2,
		Unk3:     unk3,
	}, nil
}
