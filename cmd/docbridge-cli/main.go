// Package main is the entry point for the docbridge CLI, a local frontend
// to the same conversion service the API exposes.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command for the docbridge CLI.
var rootCmd = &cobra.Command{
	Use:   "docbridge-cli",
	Short: "Convert documents to markdown from the command line",
	Long: `docbridge-cli runs the docbridge conversion pipeline against local
files without going through the HTTP API. The same backends are available:
docling when installed, or the built-in fitz fallback.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
