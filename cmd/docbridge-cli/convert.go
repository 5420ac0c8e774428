package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/docbridge/docbridge/internal/accel"
	"github.com/docbridge/docbridge/internal/config"
	"github.com/docbridge/docbridge/internal/convert"
	"github.com/docbridge/docbridge/internal/observability"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a document to markdown",
	Long: `Convert reads a local document, runs it through the conversion
backend and writes the markdown result to stdout or to the file given
with --output.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, _ := cmd.Flags().GetString("backend")
		doclingPath, _ := cmd.Flags().GetString("docling-path")
		output, _ := cmd.Flags().GetString("output")

		logger := observability.NewLogger(observability.LogConfig{
			Level:       "warn",
			Format:      "console",
			ServiceName: "docbridge-cli",
		})

		cfg := config.DefaultConfig().Converter
		cfg.Backend = backend
		cfg.DoclingPath = doclingPath

		acc := accel.Detect(runtime.GOOS)

		converter, err := convert.NewConverter(cfg, acc, logger)
		if err != nil {
			return err
		}
		service := convert.NewService(converter, logger, "")

		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		markdown, err := service.Convert(cmd.Context(), data, filepath.Base(path))
		if err != nil {
			color.Red("failed: %s", path)
			return err
		}

		if output == "" {
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(markdown, "\n"))
			return nil
		}

		if err := os.WriteFile(output, []byte(markdown), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		color.Green("converted: %s -> %s", path, output)
		return nil
	},
}

func init() {
	convertCmd.Flags().String("backend", "auto", "conversion backend: auto, docling or fitz")
	convertCmd.Flags().String("docling-path", "docling", "docling executable name or path")
	convertCmd.Flags().StringP("output", "o", "", "write markdown to this file instead of stdout")

	rootCmd.AddCommand(convertCmd)
}
