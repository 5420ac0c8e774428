package convert

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docbridge/docbridge/internal/observability"
)

func TestFitzPassthrough(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{name: "markdown", filename: "notes.md"},
		{name: "markdown long ext", filename: "notes.markdown"},
		{name: "plain text", filename: "notes.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, os.WriteFile(path, []byte("# already markdown\n"), 0o644))

			c := NewFitzConverter(observability.Nop())
			doc, err := c.Convert(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, "# already markdown\n", doc.ExportToMarkdown())
		})
	}
}

func TestFitzMissingFile(t *testing.T) {
	c := NewFitzConverter(observability.Nop())
	_, err := c.Convert(context.Background(), filepath.Join(t.TempDir(), "gone.pdf"))
	assert.Error(t, err)
}

func TestStripInlineImages(t *testing.T) {
	in := "before ![](data:image/png;base64,AAAA) after"
	assert.Equal(t, "before  after", stripInlineImages(in))
}
