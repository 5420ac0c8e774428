package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertCommandFitzPassthrough(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "notes.md")
	out := filepath.Join(dir, "out.md")
	require.NoError(t, os.WriteFile(in, []byte("# notes\n"), 0o644))

	rootCmd.SetArgs([]string{"convert", "--backend", "fitz", "-o", out, in})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "# notes\n", string(data))
}

func TestConvertCommandMissingInput(t *testing.T) {
	rootCmd.SetArgs([]string{"convert", "--backend", "fitz", filepath.Join(t.TempDir(), "gone.pdf")})
	assert.Error(t, rootCmd.Execute())
}
