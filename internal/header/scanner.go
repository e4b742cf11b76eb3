package header

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoClosingMarker reports an array literal that runs to the end of the
// document without its closing "};" line.
var ErrNoClosingMarker = errors.New(`no closing "};" found`)

const closeMarker = "};"

// SplitLines splits doc into lines, each retaining its terminator, so that
// concatenating the result reproduces doc byte-for-byte. The last line may
// lack a terminator if the document does not end with one.
func SplitLines(doc string) []string {
	var lines []string
	for len(doc) > 0 {
		i := strings.IndexByte(doc, '\n')
		if i < 0 {
			lines = append(lines, doc)
			break
		}
		lines = append(lines, doc[:i+1])
		doc = doc[i+1:]
	}
	return lines
}

// Scan walks lines in a single pass and returns every well-formed block in
// document order. The scanner moves through four states: seeking the
// "//File:" comment, expecting the length macro, expecting the array
// declaration, and collecting byte literals. A candidate whose three-line
// header does not hold together is abandoned and scanning resumes on the
// following line; arbitrary content between blocks is tolerated. An array
// literal without a closing "};" aborts the whole scan.
//
// Scan does not mutate lines and may be called repeatedly on the same
// snapshot.
func Scan(lines []string) ([]Block, error) {
	var blocks []Block
	i := 0
	for i < len(lines) {
		asset, ok := matchComment(lines[i])
		if !ok {
			i++
			continue
		}
		start := i
		if start+1 >= len(lines) || !matchDefine(lines[start+1], asset) {
			i++
			continue
		}
		if start+2 >= len(lines) || !matchDecl(lines[start+2], asset) {
			i++
			continue
		}
		dataStart := start + 3
		data, end, err := collectBytes(lines, dataStart)
		if err != nil {
			return nil, fmt.Errorf("block %s starting at line %d: %w", asset, start+1, err)
		}
		blocks = append(blocks, Block{
			Asset:     asset,
			Start:     start,
			DataStart: dataStart,
			End:       end,
			Data:      data,
		})
		i = end + 1
	}
	return blocks, nil
}

// Find scans lines and returns the block for the given asset, or ok=false
// if the document holds no such block.
func Find(lines []string, asset Asset) (Block, bool, error) {
	blocks, err := Scan(lines)
	if err != nil {
		return Block{}, false, err
	}
	for _, blk := range blocks {
		if blk.Asset == asset {
			return blk, true, nil
		}
	}
	return Block{}, false, nil
}

// matchComment recognizes the block comment line
// "//File: index_<name>.html.gz, Size: <N>" and returns the asset named by
// it. Names outside the recognized set are treated as noise.
func matchComment(line string) (Asset, bool) {
	rest, ok := strings.CutPrefix(line, "//File: index_")
	if !ok {
		return "", false
	}
	name, rest, ok := strings.Cut(rest, ".html.gz, Size: ")
	if !ok || !hasLeadingDigit(rest) {
		return "", false
	}
	asset, err := ParseAsset(name)
	if err != nil {
		return "", false
	}
	return asset, true
}

// matchDefine recognizes "#define index_<name>_html_gz_len <N>".
func matchDefine(line string, a Asset) bool {
	rest, ok := strings.CutPrefix(line, "#define "+a.LenMacro()+" ")
	return ok && hasLeadingDigit(rest)
}

// matchDecl recognizes "const unsigned char index_<name>_html_gz[] = {".
func matchDecl(line string, a Asset) bool {
	return strings.HasPrefix(line, "const unsigned char "+a.VarName()+"[] = {")
}

// collectBytes accumulates hex byte tokens from lines[start:] until a line
// whose trimmed content is exactly "};". It returns the payload and the
// line index of the closing marker.
func collectBytes(lines []string, start int) ([]byte, int, error) {
	var data []byte
	for i := start; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == closeMarker {
			return data, i, nil
		}
		data = appendLineBytes(data, lines[i])
	}
	return nil, 0, ErrNoClosingMarker
}

// appendLineBytes appends every "0x" + two-hex-digit token found on the
// line, in order, non-overlapping. Any other content is ignored.
func appendLineBytes(data []byte, line string) []byte {
	for i := 0; i+3 < len(line); {
		if line[i] != '0' || line[i+1] != 'x' {
			i++
			continue
		}
		hi, ok1 := hexVal(line[i+2])
		lo, ok2 := hexVal(line[i+3])
		if !ok1 || !ok2 {
			i++
			continue
		}
		data = append(data, hi<<4|lo)
		i += 4
	}
	return data
}

func hasLeadingDigit(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
