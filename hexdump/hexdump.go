// Package hexdump renders the memory surrounding a canary hit, with the
// canary bytes highlighted.
package hexdump

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/Moonlight-Companies/gologger/coloransi"
)

const bytesPerLine = 16

// Dump formats data as a hex dump. base is the virtual address of
// data[0] and is shown in the offset column. Every occurrence of
// highlight within data is emphasized in both the hex and ASCII columns.
func Dump(data []byte, base uint64, highlight []byte) string {
	marked := markOccurrences(data, highlight)

	var sb strings.Builder
	for offset := 0; offset < len(data); offset += bytesPerLine {
		end := offset + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		formatLine(&sb, data[offset:end], marked[offset:end], base+uint64(offset))
	}
	return sb.String()
}

// markOccurrences returns a per-byte flag slice, true where the byte
// belongs to an occurrence of the highlight pattern.
func markOccurrences(data, highlight []byte) []bool {
	marked := make([]bool, len(data))
	if len(highlight) == 0 {
		return marked
	}
	for i := 0; i+len(highlight) <= len(data); i++ {
		if bytes.Equal(data[i:i+len(highlight)], highlight) {
			for j := range highlight {
				marked[i+j] = true
			}
		}
	}
	return marked
}

func formatLine(sb *strings.Builder, data []byte, marked []bool, addr uint64) {
	sb.WriteString(coloransi.Foreground(coloransi.Cyan, fmt.Sprintf("%016x", addr)))
	sb.WriteString("  ")

	for i := 0; i < bytesPerLine; i++ {
		if i == bytesPerLine/2 {
			sb.WriteString(" ")
		}
		if i >= len(data) {
			sb.WriteString("   ")
			continue
		}
		hex := fmt.Sprintf("%02x", data[i])
		if marked[i] {
			sb.WriteString(coloransi.Color(coloransi.Yellow, coloransi.Black, hex))
		} else if data[i] == 0 {
			sb.WriteString(coloransi.Foreground(coloransi.BrightBlack, hex))
		} else {
			sb.WriteString(coloransi.Foreground(coloransi.Green, hex))
		}
		sb.WriteString(" ")
	}

	sb.WriteString(" | ")
	for i, b := range data {
		c := "."
		if unicode.IsPrint(rune(b)) && b < 0x80 {
			c = string(rune(b))
		}
		if marked[i] {
			sb.WriteString(coloransi.Color(coloransi.Yellow, coloransi.Black, c))
		} else if c == "." {
			sb.WriteString(coloransi.Foreground(coloransi.BrightBlack, c))
		} else {
			sb.WriteString(coloransi.Foreground(coloransi.White, c))
		}
	}
	sb.WriteString("\n")
}
