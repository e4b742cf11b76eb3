package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/camidx/camidx/internal/config"
	"github.com/camidx/camidx/internal/header"
	"github.com/camidx/camidx/internal/pipeline"
	"github.com/camidx/camidx/internal/ui"
	"github.com/camidx/camidx/pkg/log"
)

// inPlace selects splicing the header document instead of printing the
// block. Set via the --inplace flag.
var inPlace bool

// embedCmd represents the embed command.
var embedCmd = &cobra.Command{
	Use:   "embed <name> <file.html> [header-file]",
	Short: "Compress an asset file into a C array block, printed or spliced in place",
	Args:  cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runEmbed(args); err != nil {
			ui.PrintError("embed", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	embedCmd.Flags().BoolVar(&inPlace, "inplace", false, "Splice the block into the header file instead of printing it")
	rootCmd.AddCommand(embedCmd)
}

// runEmbed validates the asset identifier, resolves the operation inputs,
// and runs the embed. The identifier check comes before any file is read.
func runEmbed(args []string) error {
	asset, err := header.ParseAsset(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		return err
	}
	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return err
	}

	opts := pipeline.Options{
		HeaderPath:   cfg.Header,
		BytesPerLine: cfg.BytesPerLine,
	}
	if len(args) > 2 {
		opts.HeaderPath = args[2]
	}

	res, err := pipeline.Embed(asset, args[1], opts, inPlace, os.Stdout)
	if err != nil {
		return err
	}
	if res.Spliced {
		ui.PrintSuccess(string(asset), fmt.Sprintf("updated %s (%d gz bytes)", opts.HeaderPath, res.GzBytes))
	}
	return nil
}
