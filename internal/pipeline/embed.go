package pipeline

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/camidx/camidx/internal/gzipx"
	"github.com/camidx/camidx/internal/header"
)

// ErrBlockNotFound reports an in-place embed whose target document holds no
// block for the requested asset. The document is left unmodified.
var ErrBlockNotFound = errors.New("block not found in header")

// EmbedResult reports one completed embed operation.
type EmbedResult struct {
	Asset header.Asset
	// GzBytes is the compressed payload size declared by the new block.
	GzBytes int
	// Spliced is true when the header document was rewritten in place.
	Spliced bool
}

// Embed compresses the asset file and assembles a replacement block. When
// inPlace is false the block is written to out; otherwise the existing
// block for the asset is located in the header document and replaced, every
// other line byte-for-byte untouched, and the document is rewritten whole.
//
// The asset identifier is assumed already validated; callers reject unknown
// identifiers before any file is read.
func Embed(asset header.Asset, assetPath string, opts Options, inPlace bool, out io.Writer) (EmbedResult, error) {
	res := EmbedResult{Asset: asset}

	raw, err := os.ReadFile(assetPath)
	if err != nil {
		return res, fmt.Errorf("failed to read %s: %w", assetPath, err)
	}

	gz, err := gzipx.Compress(raw)
	if err != nil {
		return res, fmt.Errorf("failed to compress %s: %w", assetPath, err)
	}
	res.GzBytes = len(gz)

	block := header.RenderBlock(asset, gz, opts.BytesPerLine)

	if !inPlace {
		if _, err := io.WriteString(out, block); err != nil {
			return res, err
		}
		return res, nil
	}

	doc, err := os.ReadFile(opts.HeaderPath)
	if err != nil {
		return res, fmt.Errorf("failed to read %s: %w", opts.HeaderPath, err)
	}

	lines := header.SplitLines(string(doc))
	blk, ok, err := header.Find(lines, asset)
	if err != nil {
		return res, fmt.Errorf("failed to parse %s: %w", opts.HeaderPath, err)
	}
	if !ok {
		return res, fmt.Errorf("%w: %s in %s", ErrBlockNotFound, asset, opts.HeaderPath)
	}

	spliced := header.Splice(lines, blk, block)
	if err := writeDocument(opts.HeaderPath, strings.Join(spliced, "")); err != nil {
		return res, err
	}
	slog.Debug("spliced block", "asset", asset, "lines", blk.End-blk.Start+1, "gz_bytes", len(gz))
	res.Spliced = true
	return res, nil
}

// writeDocument rewrites path wholesale: the new content goes to a unique
// temp file alongside the target, then replaces it by rename.
func writeDocument(path, content string) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
