package convert

import (
	"fmt"

	"github.com/docbridge/docbridge/internal/accel"
	"github.com/docbridge/docbridge/internal/config"
	"github.com/docbridge/docbridge/internal/observability"
)

// NewConverter builds the backend selected by configuration. The accelerator
// options are bound to the PDF pipeline; other formats use backend defaults.
// With backend "auto" docling is preferred and fitz serves as the fallback
// when the binary is not installed.
func NewConverter(cfg config.ConverterConfig, acc accel.Options, logger *observability.Logger) (Converter, error) {
	opts := FormatOptions{
		FormatPDF: PipelineOptions{Accelerator: acc},
	}

	switch cfg.Backend {
	case "docling":
		return NewDoclingConverter(cfg.DoclingPath, opts, logger)
	case "fitz":
		return NewFitzConverter(logger), nil
	case "auto":
		dc, err := NewDoclingConverter(cfg.DoclingPath, opts, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("Docling unavailable, falling back to fitz backend")
			return NewFitzConverter(logger), nil
		}
		return dc, nil
	default:
		return nil, fmt.Errorf("unknown converter backend: %s", cfg.Backend)
	}
}
