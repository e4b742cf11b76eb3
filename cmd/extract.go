package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/camidx/camidx/internal/config"
	"github.com/camidx/camidx/internal/pipeline"
	"github.com/camidx/camidx/internal/ui"
	"github.com/camidx/camidx/pkg/log"
)

// outDir overrides the extraction directory. Set via the --out-dir flag.
var outDir string

// extractCmd represents the extract command.
var extractCmd = &cobra.Command{
	Use:   "extract [header-file]",
	Short: "Extract embedded gzipped HTML assets to standalone .html files",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runExtract(args); err != nil {
			ui.PrintError("extract", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	extractCmd.Flags().StringVar(&outDir, "out-dir", "", "Directory for extracted files (default: the header's directory)")
	rootCmd.AddCommand(extractCmd)
}

// runExtract resolves the operation inputs from camidx.yaml and the command
// line, runs the extraction, and reports each written asset.
func runExtract(args []string) error {
	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		return err
	}
	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return err
	}

	opts := pipeline.Options{
		HeaderPath:   cfg.Header,
		OutDir:       cfg.OutDir,
		BytesPerLine: cfg.BytesPerLine,
	}
	if len(args) > 0 {
		opts.HeaderPath = args[0]
	}
	if outDir != "" {
		opts.OutDir = outDir
	}

	ui.PrintHeader(fmt.Sprintf("Extracting assets from %s", opts.HeaderPath))
	results, skipped, err := pipeline.Extract(opts)
	if err != nil {
		return err
	}
	for _, r := range results {
		ui.PrintSuccess(string(r.Asset), fmt.Sprintf("%s (%d bytes)", r.Path, r.Bytes))
	}
	for _, s := range skipped {
		ui.PrintWarning(string(s.Asset), fmt.Sprintf("decompress failed: %v", s.Err))
	}
	return nil
}
