package main

import "github.com/camidx/camidx/cmd"

// main is the entry point of the camidx CLI application.
// It executes the root command which handles argument parsing and subcommand dispatch.
func main() {
	cmd.Execute()
}
