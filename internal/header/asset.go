// Package header implements the camera_index.h document format: locating
// embedded gzip byte-array blocks, rendering replacement blocks in the
// canonical textual form, and splicing them back into the document.
package header

import (
	"errors"
	"fmt"
)

// Asset identifies one of the embedded web UI assets recognized by the tool.
type Asset string

// The fixed set of sensors whose index pages are embedded in camera_index.h.
const (
	OV2640 Asset = "ov2640"
	OV3660 Asset = "ov3660"
	OV5640 Asset = "ov5640"
)

// ErrUnknownAsset is returned when an identifier is outside the recognized set.
var ErrUnknownAsset = errors.New("unknown asset identifier")

// Assets returns the recognized asset identifiers in declaration order.
func Assets() []Asset {
	return []Asset{OV2640, OV3660, OV5640}
}

// ParseAsset validates s against the recognized identifier set.
// It never touches the filesystem, so callers can reject bad identifiers
// before reading any input.
func ParseAsset(s string) (Asset, error) {
	switch Asset(s) {
	case OV2640, OV3660, OV5640:
		return Asset(s), nil
	}
	return "", fmt.Errorf("%w: %q (use ov2640, ov3660, or ov5640)", ErrUnknownAsset, s)
}

// GzName returns the synthetic filename referenced by the block comment,
// e.g. "index_ov2640.html.gz".
func (a Asset) GzName() string {
	return fmt.Sprintf("index_%s.html.gz", a)
}

// HTMLName returns the standalone file name used by extraction,
// e.g. "index_ov2640.html".
func (a Asset) HTMLName() string {
	return fmt.Sprintf("index_%s.html", a)
}

// VarName returns the C array variable name, e.g. "index_ov2640_html_gz".
func (a Asset) VarName() string {
	return fmt.Sprintf("index_%s_html_gz", a)
}

// LenMacro returns the length macro name, e.g. "index_ov2640_html_gz_len".
func (a Asset) LenMacro() string {
	return a.VarName() + "_len"
}
