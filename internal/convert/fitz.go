package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/gen2brain/go-fitz"

	"github.com/docbridge/docbridge/internal/observability"
)

// FitzConverter is the in-process fallback backend. It renders each page to
// HTML with go-fitz (MuPDF) and rewrites the HTML as markdown. Coverage is
// narrower than docling: whatever MuPDF opens (PDF, EPUB, XPS, CBZ, images)
// plus a passthrough for inputs that already are markdown or plain text.
type FitzConverter struct {
	logger *observability.Logger
}

// NewFitzConverter creates the fallback converter.
func NewFitzConverter(logger *observability.Logger) *FitzConverter {
	return &FitzConverter{logger: logger}
}

// Convert reads the document at path and returns its markdown form.
func (c *FitzConverter) Convert(ctx context.Context, path string) (*Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".txt":
		// Plain text is valid markdown already.
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return NewDocument(string(data), path), nil
	}

	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer doc.Close()

	conv := md.NewConverter("", true, nil)
	var b strings.Builder

	for i := 0; i < doc.NumPage(); i++ {
		html, err := doc.HTML(i, true)
		if err != nil {
			return nil, fmt.Errorf("render page %d: %w", i+1, err)
		}

		text, err := conv.ConvertString(html)
		if err != nil {
			return nil, fmt.Errorf("markdown page %d: %w", i+1, err)
		}

		b.WriteString(stripInlineImages(text))
		b.WriteString("\n\n")
	}

	c.logger.Debug().Str("path", path).Int("pages", doc.NumPage()).Msg("Converted with fitz backend")
	return NewDocument(b.String(), path), nil
}

var dataImagePattern = regexp.MustCompile(`!\[\]\(data:image/[^)]+\)`)

// stripInlineImages drops base64 data-URI images that MuPDF embeds in its
// HTML output; they bloat the markdown without adding text content.
func stripInlineImages(content string) string {
	return dataImagePattern.ReplaceAllString(content, "")
}
