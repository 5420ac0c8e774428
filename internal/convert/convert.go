// Package convert implements document-to-markdown conversion with pluggable
// backends. The Service owns upload materialization and temp-file lifecycle;
// the actual structure extraction is delegated to a Converter backend.
package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/docbridge/docbridge/internal/accel"
	"github.com/docbridge/docbridge/internal/observability"
)

// Format identifies an input document format.
type Format string

// FormatPDF is the only format with dedicated pipeline options; everything
// else rides on the backend's own format dispatch.
const FormatPDF Format = "pdf"

// PipelineOptions holds per-format conversion settings.
type PipelineOptions struct {
	Accelerator accel.Options
}

// FormatOptions associates formats with their pipeline options.
type FormatOptions map[Format]PipelineOptions

// Converter transforms a document file into a structured Document. Backends
// (docling, fitz) implement this interface.
type Converter interface {
	// Convert reads the document at path and returns its structured form.
	Convert(ctx context.Context, path string) (*Document, error)
}

// Service exposes the single conversion operation: bytes plus a filename in,
// markdown out. It is stateless and safe for concurrent use; each call owns
// its own uniquely named temp file.
type Service struct {
	converter Converter
	logger    *observability.Logger
	tempDir   string
}

// NewService creates a conversion service backed by the given converter.
// An empty tempDir falls back to the system temp directory.
func NewService(converter Converter, logger *observability.Logger, tempDir string) *Service {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &Service{
		converter: converter,
		logger:    logger,
		tempDir:   tempDir,
	}
}

// Convert materializes the upload to a temp file, runs the backend converter
// on it and returns the markdown export. The temp file is removed on every
// exit path. All failures collapse into a single "conversion failed" category
// carrying the underlying message; nothing is retried or classified further.
func (s *Service) Convert(ctx context.Context, data []byte, filename string) (string, error) {
	// Only the extension is kept from the client filename; the backend uses
	// it as a format hint. A missing extension passes through as an empty
	// suffix, which may make format detection fail downstream.
	suffix := filepath.Ext(filename)
	path := filepath.Join(s.tempDir, "docbridge-"+uuid.NewString()+suffix)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("conversion failed: write upload: %w", err)
	}
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("path", path).Msg("Failed to remove temp file")
		}
	}()

	doc, err := s.converter.Convert(ctx, path)
	if err != nil {
		s.logger.Error().Err(err).Str("filename", filename).Msg("Conversion failed")
		return "", fmt.Errorf("conversion failed: %w", err)
	}

	return doc.ExportToMarkdown(), nil
}
