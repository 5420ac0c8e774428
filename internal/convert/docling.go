package convert

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/docbridge/docbridge/internal/observability"
)

// DoclingConverter converts documents by invoking the docling executable.
// Docling performs layout analysis, OCR and table extraction internally;
// this wrapper only forwards a file path and the accelerator configuration.
type DoclingConverter struct {
	binPath string
	opts    FormatOptions
	logger  *observability.Logger
}

// NewDoclingConverter creates a converter around the docling binary. It
// verifies the binary is resolvable before returning.
func NewDoclingConverter(binPath string, opts FormatOptions, logger *observability.Logger) (*DoclingConverter, error) {
	resolved, err := exec.LookPath(binPath)
	if err != nil {
		return nil, fmt.Errorf("docling binary not found: %w", err)
	}
	return &DoclingConverter{
		binPath: resolved,
		opts:    opts,
		logger:  logger,
	}, nil
}

// Convert runs docling against the file at path and reads back the markdown
// it produces. Output goes to a throwaway directory that is removed before
// returning.
func (c *DoclingConverter) Convert(ctx context.Context, path string) (*Document, error) {
	outDir, err := os.MkdirTemp("", "docbridge-out-")
	if err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	args := c.buildArgs(path, outDir)
	c.logger.Debug().Str("bin", c.binPath).Strs("args", args).Msg("Running docling")

	cmd := exec.CommandContext(ctx, c.binPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("docling: %w", err)
		}
		return nil, fmt.Errorf("docling: %w: %s", err, msg)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	mdPath := filepath.Join(outDir, stem+".md")

	data, err := os.ReadFile(mdPath)
	if err != nil {
		return nil, fmt.Errorf("read docling output: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("docling produced empty output for %s", filepath.Base(path))
	}

	return NewDocument(string(data), path), nil
}

// buildArgs assembles the docling command line. The PDF pipeline options
// carry the accelerator device and thread count selected at startup.
func (c *DoclingConverter) buildArgs(path, outDir string) []string {
	args := []string{"--to", "md", "--output", outDir}

	if pdfOpts, ok := c.opts[FormatPDF]; ok {
		args = append(args,
			"--device", string(pdfOpts.Accelerator.Device),
			"--num-threads", strconv.Itoa(pdfOpts.Accelerator.NumThreads),
		)
	}

	return append(args, path)
}
