// Package pipeline implements the extract and embed operations on a header
// document.
package pipeline

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/camidx/camidx/internal/gzipx"
	"github.com/camidx/camidx/internal/header"
)

// Options carries the resolved inputs of one operation. Resolved once at
// the start of the operation and never mutated.
type Options struct {
	// HeaderPath is the document to scan or splice.
	HeaderPath string
	// OutDir is where extracted assets are written. Empty means the
	// directory containing HeaderPath.
	OutDir string
	// BytesPerLine is the array grouping used when rendering blocks.
	BytesPerLine int
}

// ExtractResult reports one successfully extracted asset.
type ExtractResult struct {
	Asset header.Asset
	Path  string
	Bytes int
}

// Skipped reports a block whose payload could not be decompressed.
type Skipped struct {
	Asset header.Asset
	Err   error
}

// Extract scans the header document and writes each embedded asset as a
// standalone decompressed file. A block whose payload fails to decompress
// is reported in skipped and the remaining blocks are still written. A
// malformed document aborts the whole operation.
func Extract(opts Options) (results []ExtractResult, skipped []Skipped, err error) {
	doc, err := os.ReadFile(opts.HeaderPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", opts.HeaderPath, err)
	}

	blocks, err := header.Scan(header.SplitLines(string(doc)))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", opts.HeaderPath, err)
	}

	outDir := opts.OutDir
	if outDir == "" {
		outDir = filepath.Dir(opts.HeaderPath)
	}

	for _, blk := range blocks {
		html, err := gzipx.Decompress(blk.Data)
		if err != nil {
			slog.Warn("decompress failed, skipping block", "asset", blk.Asset, "error", err)
			skipped = append(skipped, Skipped{Asset: blk.Asset, Err: err})
			continue
		}
		outPath := filepath.Join(outDir, blk.Asset.HTMLName())
		if err := os.WriteFile(outPath, html, 0644); err != nil {
			return results, skipped, fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		slog.Debug("extracted asset", "asset", blk.Asset, "path", outPath, "bytes", len(html))
		results = append(results, ExtractResult{Asset: blk.Asset, Path: outPath, Bytes: len(html)})
	}
	return results, skipped, nil
}
