package services

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func writeDOCX(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	f, err := os.Create(p)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return p
}

func TestExtractTextPlain(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ex := NewTextExtractor()

	got, err := ex.ExtractText(writeFile(t, dir, "cv.TXT", []byte("Skills: Go\nSQL")))
	require.NoError(t, err)
	assert.Equal(t, "Skills: Go\nSQL", got)

	got, err = ex.ExtractText(writeFile(t, dir, "cv.md", []byte("# Jane\xff")))
	require.NoError(t, err)
	assert.Equal(t, "# Jane�", got)
}

func TestExtractTextDOCX(t *testing.T) {
	t.Parallel()

	body := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>
<w:p><w:r><w:t>Experience</w:t></w:r></w:p>
<w:p><w:r><w:t>- built </w:t></w:r><w:r><w:t>APIs</w:t></w:r></w:p>
</w:body></w:document>`

	got, err := NewTextExtractor().ExtractText(writeDOCX(t, t.TempDir(), "cv.docx", body))
	require.NoError(t, err)
	assert.Contains(t, got, "Experience\n")
	assert.Contains(t, got, "- built APIs")
}

func TestExtractTextDOCXWithoutBody(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p := filepath.Join(dir, "broken.docx")
	f, err := os.Create(p)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	_, err = zw.Create("word/styles.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	_, err = NewTextExtractor().ExtractText(p)
	assert.Error(t, err)
}

func TestExtractTextErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ex := NewTextExtractor()

	_, err := ex.ExtractText(writeFile(t, dir, "cv.rtf", []byte("x")))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ex.ExtractText(writeFile(t, dir, "blank.txt", []byte(" \n\t")))
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = ex.ExtractText(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestIsSupportedExtension(t *testing.T) {
	t.Parallel()

	for _, ext := range []string{".pdf", ".DOCX", ".txt", ".md"} {
		assert.True(t, IsSupportedExtension(ext), ext)
	}
	for _, ext := range []string{".doc", "", ".exe"} {
		assert.False(t, IsSupportedExtension(ext), ext)
	}
}
