package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "camidx",
	Short: "Extract and re-embed the gzipped web assets of camera_index.h",
	Long: `camidx converts between the gzip-compressed web UI assets embedded in a
generated camera_index.h (C byte arrays) and standalone .html files, so the
pages can be edited and baked back into the firmware header.`,
	Version: version,
}

// version is overridable at build time via -ldflags.
var version = "dev"

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
