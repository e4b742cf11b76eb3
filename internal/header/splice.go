package header

// Splice produces a new line snapshot in which the span occupied by blk
// (from its comment line through its closing marker, inclusive) is replaced
// by replacement, and every other line is the original string value. The
// input snapshot is not modified.
func Splice(lines []string, blk Block, replacement string) []string {
	out := make([]string, 0, blk.Start+1+len(lines)-blk.End-1)
	out = append(out, lines[:blk.Start]...)
	out = append(out, replacement)
	out = append(out, lines[blk.End+1:]...)
	return out
}
