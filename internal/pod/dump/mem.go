package dump

import "strings"

const memRowBytes = 16

// Mem writes data as rows of offset, hex bytes and printable ASCII.
func Mem(s Sink, indent int, data []byte) {
	const hexdigits = "0123456789abcdef"
	var row strings.Builder
	for off := 0; off < len(data); off += memRowBytes {
		end := min(off+memRowBytes, len(data))
		chunk := data[off:end]

		row.Reset()
		for i := 0; i < memRowBytes; i++ {
			if i < len(chunk) {
				row.WriteByte(hexdigits[chunk[i]>>4])
				row.WriteByte(hexdigits[chunk[i]&0x0f])
				row.WriteByte(' ')
			} else {
				row.WriteString("   ")
			}
		}
		row.WriteByte('|')
		for _, c := range chunk {
			if c < 0x20 || c > 0x7e {
				c = '.'
			}
			row.WriteByte(c)
		}
		row.WriteByte('|')
		s.Line(indent, "%04x: %s", off, row.String())
	}
}
