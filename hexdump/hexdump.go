// Package hexdump renders byte buffers captured from a foreign process as
// offset-annotated hex with an ASCII gutter.
package hexdump

import (
	"fmt"
	"strings"

	"github.com/Moonlight-Companies/gologger/coloransi"
)

// Options controls the dump layout
type Options struct {
	BytesPerLine int
	ShowASCII    bool
	// StartOffset is the remote address of the first byte; offsets in the
	// left column are absolute
	StartOffset uint64
	// Colorize wraps offsets and non-printable markers in ANSI colors
	Colorize bool
}

func DefaultOptions() Options {
	return Options{
		BytesPerLine: 16,
		ShowASCII:    true,
		Colorize:     true,
	}
}

// Dump formats data according to options
func Dump(data []byte, options Options) string {
	if options.BytesPerLine <= 0 {
		options.BytesPerLine = 16
	}

	var sb strings.Builder

	for lineStart := 0; lineStart < len(data); lineStart += options.BytesPerLine {
		lineEnd := lineStart + options.BytesPerLine
		if lineEnd > len(data) {
			lineEnd = len(data)
		}
		line := data[lineStart:lineEnd]

		offset := fmt.Sprintf("%012x", options.StartOffset+uint64(lineStart))
		if options.Colorize {
			offset = coloransi.Foreground(coloransi.BrightBlack, offset)
		}
		sb.WriteString(offset)
		sb.WriteString("  ")

		for i := 0; i < options.BytesPerLine; i++ {
			if i < len(line) {
				sb.WriteString(fmt.Sprintf("%02x ", line[i]))
			} else {
				sb.WriteString("   ")
			}
			if i == options.BytesPerLine/2-1 {
				sb.WriteString(" ")
			}
		}

		if options.ShowASCII {
			sb.WriteString(" |")
			for _, b := range line {
				if b >= 0x20 && b < 0x7F {
					sb.WriteByte(b)
				} else {
					sb.WriteByte('.')
				}
			}
			sb.WriteString("|")
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

// DumpWithOffset formats data with default options starting at the given
// remote address
func DumpWithOffset(data []byte, startOffset uint64) string {
	options := DefaultOptions()
	options.StartOffset = startOffset
	return Dump(data, options)
}
