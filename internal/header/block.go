package header

// Block is one located byte-array declaration unit within a document:
// the descriptive comment, the length macro, the array literal, and the
// closing marker. Line indexes refer to the scanned line snapshot.
type Block struct {
	// Asset identifies which embedded asset this block holds.
	Asset Asset
	// Start is the line index of the "//File:" comment.
	Start int
	// DataStart is the line index of the first byte-literal line.
	DataStart int
	// End is the line index of the closing "};" marker.
	End int
	// Data is the compressed payload collected from the array literal.
	Data []byte
}
