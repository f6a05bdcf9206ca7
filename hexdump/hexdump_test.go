package hexdump

import (
	"strings"
	"testing"
)

func TestDumpPlain(t *testing.T) {
	options := DefaultOptions()
	options.Colorize = false
	options.StartOffset = 0x694B00

	out := Dump([]byte("Hexagon\x00\x01\x02"), options)

	if !strings.Contains(out, "000000694b00") {
		t.Errorf("missing absolute offset column:\n%s", out)
	}
	if !strings.Contains(out, "48 65 78 61 67 6f 6e") {
		t.Errorf("missing hex bytes:\n%s", out)
	}
	if !strings.Contains(out, "|Hexagon...|") {
		t.Errorf("missing ASCII gutter with dots for non-printables:\n%s", out)
	}
}

func TestDumpLineWrapping(t *testing.T) {
	options := DefaultOptions()
	options.Colorize = false
	options.BytesPerLine = 8

	out := Dump(make([]byte, 20), options)

	if got := strings.Count(out, "\n"); got != 3 {
		t.Errorf("expected 3 lines for 20 bytes at 8 per line, got %d:\n%s", got, out)
	}
}

func TestDumpEmpty(t *testing.T) {
	if out := Dump(nil, DefaultOptions()); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}
