package header

import (
	"fmt"
	"strings"
)

// DefaultBytesPerLine is the canonical array grouping used by generated
// blocks. The scanner accepts any grouping; the encoder always emits this
// one unless told otherwise.
const DefaultBytesPerLine = 12

const bodyIndent = "  "

// EncodeArray renders data as C array literal lines: perLine bytes per
// line, each byte as uppercase 0xHH, joined by ", ", with a trailing comma
// on every line except the one holding the final byte. The result carries
// no trailing newline. perLine values below 1 fall back to
// DefaultBytesPerLine.
func EncodeArray(data []byte, perLine int) string {
	if perLine < 1 {
		perLine = DefaultBytesPerLine
	}
	var b strings.Builder
	for i := 0; i < len(data); i += perLine {
		if i > 0 {
			b.WriteByte('\n')
		}
		end := i + perLine
		if end > len(data) {
			end = len(data)
		}
		b.WriteString(bodyIndent)
		for j, v := range data[i:end] {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "0x%02X", v)
		}
		if end < len(data) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// RenderBlock assembles a complete block for asset holding the compressed
// payload data: the size comment, the length macro, the array declaration,
// the encoded body, and the closing marker. The result ends with a newline
// so it can replace a block's line span verbatim.
func RenderBlock(asset Asset, data []byte, perLine int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "//File: %s, Size: %d\n", asset.GzName(), len(data))
	fmt.Fprintf(&b, "#define %s %d\n", asset.LenMacro(), len(data))
	fmt.Fprintf(&b, "const unsigned char %s[] = {\n", asset.VarName())
	b.WriteString(EncodeArray(data, perLine))
	b.WriteString("\n};\n")
	return b.String()
}
