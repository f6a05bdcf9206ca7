package process_blob

import (
	"testing"

	"hexbot/process"
)

func TestReadTypedValues(t *testing.T) {
	// Little-endian: u32 0x04030201 at 0, u16 0x0605 at 4, u8 0x07 at 6
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	blob := NewProcessBlob(0x1000, data)

	if v, err := blob.ReadUINT32(0x1000); err != nil || v != 0x04030201 {
		t.Errorf("ReadUINT32 = %x, %v", v, err)
	}
	if v, err := blob.ReadUINT16(0x1004); err != nil || v != 0x0605 {
		t.Errorf("ReadUINT16 = %x, %v", v, err)
	}
	if v, err := blob.ReadUINT8(0x1006); err != nil || v != 0x07 {
		t.Errorf("ReadUINT8 = %x, %v", v, err)
	}
	if v, err := blob.ReadUINT64(0x1000); err != nil || v != 0x0807060504030201 {
		t.Errorf("ReadUINT64 = %x, %v", v, err)
	}
}

func TestOffsetReads(t *testing.T) {
	data := []byte{0xAA, 0xBB, 0xCC, 0xDD, 0x11}
	blob := NewProcessBlob(0x2000, data)

	if v, err := blob.OffsetUINT32(0); err != nil || v != 0xDDCCBBAA {
		t.Errorf("OffsetUINT32(0) = %x, %v", v, err)
	}
	if v, err := blob.OffsetUINT8(4); err != nil || v != 0x11 {
		t.Errorf("OffsetUINT8(4) = %x, %v", v, err)
	}
}

func TestOutOfBounds(t *testing.T) {
	blob := NewProcessBlob(0x1000, []byte{0x01, 0x02, 0x03, 0x04})

	if _, err := blob.ReadUINT32(0x0FFF); err == nil {
		t.Error("read below base must fail")
	}
	if _, err := blob.ReadUINT32(0x1001); err == nil {
		t.Error("read past the end must fail")
	}
	if _, err := blob.OffsetUINT8(4); err == nil {
		t.Error("offset past the end must fail")
	}
}

func TestOffsetBlobReslices(t *testing.T) {
	data := []byte{0x00, 0x00, 0x01, 0x02, 0x03, 0x04}
	blob := NewProcessBlob(0x3000, data)

	sub, err := blob.OffsetBlob(2, 4)
	if err != nil {
		t.Fatalf("OffsetBlob: %v", err)
	}

	if v, err := sub.OffsetUINT32(0); err != nil || v != 0x04030201 {
		t.Errorf("sub OffsetUINT32 = %x, %v", v, err)
	}
	if len(sub.Data()) != 4 {
		t.Errorf("sub data length = %d", len(sub.Data()))
	}
}

func TestZeroSizeBlob(t *testing.T) {
	blob := NewProcessBlob(0, []byte{0x01})
	if _, err := blob.ReadBlob(0, 0); err == nil {
		t.Error("zero size blob must fail")
	}
}

var _ process.ProcessReadOffset = (*ProcessBlob)(nil)
