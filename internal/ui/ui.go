package ui

import (
	"fmt"
	"os"
)

var (
	// ANSI Colors
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBold   = "\033[1m"
)

func PrintHeader(msg string) {
	fmt.Printf("\n%s%s%s\n", ColorBold, msg, ColorReset)
}

func PrintSuccess(label, detail string) {
	fmt.Printf("  %s✔%s %-20s %s%s\n", ColorGreen, ColorReset, label, ColorGreen, detail+ColorReset)
}

// PrintWarning writes to stderr so warnings survive stdout redirection.
func PrintWarning(label, detail string) {
	fmt.Fprintf(os.Stderr, "  %s!%s %-20s %s%s\n", ColorYellow, ColorReset, label, ColorYellow, detail+ColorReset)
}

func PrintError(label, detail string) {
	fmt.Fprintf(os.Stderr, "  %s✘%s %-20s %s%s\n", ColorRed, ColorReset, label, ColorRed, detail+ColorReset)
}
