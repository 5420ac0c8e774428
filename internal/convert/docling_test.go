package convert

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docbridge/docbridge/internal/accel"
	"github.com/docbridge/docbridge/internal/observability"
)

func TestNewDoclingConverterMissingBinary(t *testing.T) {
	_, err := NewDoclingConverter("definitely-not-a-real-binary-4f2a", nil, observability.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docling binary not found")
}

func TestDoclingBuildArgs(t *testing.T) {
	c := &DoclingConverter{
		opts: FormatOptions{
			FormatPDF: PipelineOptions{
				Accelerator: accel.Options{Device: accel.DeviceMPS, NumThreads: 4},
			},
		},
		logger: observability.Nop(),
	}

	args := c.buildArgs("/tmp/in.pdf", "/tmp/out")
	assert.Equal(t, []string{
		"--to", "md",
		"--output", "/tmp/out",
		"--device", "mps",
		"--num-threads", "4",
		"/tmp/in.pdf",
	}, args)
}

func TestDoclingBuildArgsNoPDFOptions(t *testing.T) {
	c := &DoclingConverter{opts: FormatOptions{}, logger: observability.Nop()}

	args := c.buildArgs("/tmp/in.docx", "/tmp/out")
	assert.Equal(t, []string{"--to", "md", "--output", "/tmp/out", "/tmp/in.docx"}, args)
}

// fakeDocling is a stand-in script that mimics docling's CLI contract:
// it writes <stem>.md into the directory following --output.
const fakeDocling = `#!/bin/sh
out=""
prev=""
last=""
for a in "$@"; do
  if [ "$prev" = "--output" ]; then out="$a"; fi
  prev="$a"
  last="$a"
done
name=$(basename "$last")
stem="${name%.*}"
printf '# converted\n' > "$out/$stem.md"
`

func TestDoclingConvertWithFakeBinary(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake requires a POSIX shell")
	}

	dir := t.TempDir()
	bin := filepath.Join(dir, "docling")
	require.NoError(t, os.WriteFile(bin, []byte(fakeDocling), 0o755))

	in := filepath.Join(dir, "sample.pdf")
	require.NoError(t, os.WriteFile(in, []byte("%PDF-1.4"), 0o644))

	opts := FormatOptions{
		FormatPDF: PipelineOptions{Accelerator: accel.Detect("linux")},
	}
	c, err := NewDoclingConverter(bin, opts, observability.Nop())
	require.NoError(t, err)

	doc, err := c.Convert(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "# converted\n", doc.ExportToMarkdown())
	assert.Equal(t, in, doc.Source())
}

func TestDoclingConvertFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake requires a POSIX shell")
	}

	dir := t.TempDir()
	bin := filepath.Join(dir, "docling")
	script := "#!/bin/sh\necho 'unsupported format' >&2\nexit 1\n"
	require.NoError(t, os.WriteFile(bin, []byte(script), 0o755))

	c, err := NewDoclingConverter(bin, nil, observability.Nop())
	require.NoError(t, err)

	_, err = c.Convert(context.Background(), filepath.Join(dir, "bad.bin"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
