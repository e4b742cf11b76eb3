package header

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeArray(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		perLine int
		want    string
	}{
		{
			name: "empty",
			data: nil, perLine: 12,
			want: "",
		},
		{
			name: "single byte",
			data: []byte{0xAB}, perLine: 12,
			want: "  0xAB",
		},
		{
			name: "uppercase zero padded",
			data: []byte{0x01, 0xFF, 0x0A}, perLine: 12,
			want: "  0x01, 0xFF, 0x0A",
		},
		{
			name: "wraps with trailing comma",
			data: []byte{0, 1, 2, 3}, perLine: 2,
			want: "  0x00, 0x01,\n  0x02, 0x03",
		},
		{
			name: "exact multiple has no trailing comma on last line",
			data: []byte{0, 1, 2, 3}, perLine: 4,
			want: "  0x00, 0x01, 0x02, 0x03",
		},
		{
			name: "one past the boundary",
			data: []byte{0, 1, 2, 3, 4}, perLine: 4,
			want: "  0x00, 0x01, 0x02, 0x03,\n  0x04",
		},
		{
			name: "non-positive perLine falls back to default",
			data: []byte{9}, perLine: 0,
			want: "  0x09",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeArray(tt.data, tt.perLine)
			if got != tt.want {
				t.Errorf("EncodeArray() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeArray_CanonicalGrouping(t *testing.T) {
	data := make([]byte, 30)
	for i := range data {
		data[i] = byte(i)
	}
	out := EncodeArray(data, DefaultBytesPerLine)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines for 30 bytes, got %d", len(lines))
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, "  0x") {
			t.Errorf("line %d not indented: %q", i, line)
		}
		last := i == len(lines)-1
		if !last && !strings.HasSuffix(line, ",") {
			t.Errorf("line %d missing trailing comma: %q", i, line)
		}
		if last && strings.HasSuffix(line, ",") {
			t.Errorf("final line has trailing comma: %q", line)
		}
	}
}

// The scanner's token collection is the codec's decode direction: for any
// byte sequence, scanning a rendered block must yield the bytes back.
func TestRenderBlock_RoundTrip(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	doc := RenderBlock(OV2640, data, DefaultBytesPerLine)
	blocks, err := Scan(SplitLines(doc))
	if err != nil {
		t.Fatalf("Scan() failed on rendered block: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Asset != OV2640 {
		t.Errorf("asset = %s, want ov2640", blocks[0].Asset)
	}
	if !bytes.Equal(blocks[0].Data, data) {
		t.Errorf("decoded payload differs from input")
	}
}

func TestRenderBlock_Shape(t *testing.T) {
	data := []byte{0xDE, 0xAD}
	out := RenderBlock(OV3660, data, 12)

	want := "//File: index_ov3660.html.gz, Size: 2\n" +
		"#define index_ov3660_html_gz_len 2\n" +
		"const unsigned char index_ov3660_html_gz[] = {\n" +
		"  0xDE, 0xAD\n" +
		"};\n"
	if out != want {
		t.Errorf("RenderBlock() = %q, want %q", out, want)
	}
}
