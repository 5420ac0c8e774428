// Package handlers provides HTTP handlers for the docbridge API.
package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/docbridge/docbridge/internal/observability"
)

// ConversionService is the conversion operation the handler depends on.
type ConversionService interface {
	Convert(ctx context.Context, data []byte, filename string) (string, error)
}

// ConvertHandler handles document conversion requests.
type ConvertHandler struct {
	logger         *observability.Logger
	service        ConversionService
	maxUploadBytes int64
}

// NewConvertHandler creates a new conversion handler.
func NewConvertHandler(logger *observability.Logger, service ConversionService, maxUploadBytes int64) *ConvertHandler {
	return &ConvertHandler{
		logger:         logger,
		service:        service,
		maxUploadBytes: maxUploadBytes,
	}
}

// ConvertResponseDTO represents the API response for a successful conversion.
type ConvertResponseDTO struct {
	Markdown string `json:"markdown"`
}

// ErrorResponseDTO represents the API response for a failed conversion.
type ErrorResponseDTO struct {
	Detail string `json:"detail"`
}

// Convert handles POST /convert. It accepts one multipart file field, runs
// the conversion service and returns the markdown. Every failure, from a
// malformed upload to a backend error, maps to a single 500 category with
// the underlying message in the detail field.
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, "read upload: "+err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.writeError(w, "read upload: "+err.Error())
		return
	}

	h.logger.Info().
		Str("filename", header.Filename).
		Int("size_bytes", len(data)).
		Msg("Converting upload")

	markdown, err := h.service.Convert(r.Context(), data, header.Filename)
	if err != nil {
		h.writeError(w, err.Error())
		return
	}

	h.logger.Info().
		Str("filename", header.Filename).
		Dur("duration", time.Since(started)).
		Msg("Conversion complete")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ConvertResponseDTO{Markdown: markdown})
}

func (h *ConvertHandler) writeError(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(ErrorResponseDTO{Detail: detail})
}
