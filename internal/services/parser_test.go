package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFromBytes_PlainText(t *testing.T) {
	parser := NewDocumentParserService()

	text, err := parser.ExtractFromBytes([]byte("  hello world\n\n"), ".txt")
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
}

func TestExtractFromBytes_UnsupportedFormat(t *testing.T) {
	parser := NewDocumentParserService()

	_, err := parser.ExtractFromBytes([]byte("whatever"), ".odt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = parser.ExtractFromBytes([]byte("whatever"), "")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractFromBytes_CorruptPDF(t *testing.T) {
	parser := NewDocumentParserService()

	_, err := parser.ExtractFromBytes([]byte("this is not a pdf"), ".pdf")
	assert.ErrorIs(t, err, ErrCorruptDocument)
}

func TestExtractFromBytes_CorruptDocx(t *testing.T) {
	parser := NewDocumentParserService()

	_, err := parser.ExtractFromBytes([]byte("this is not a docx"), ".docx")
	assert.ErrorIs(t, err, ErrCorruptDocument)
}

func TestExtractText_FileNotFound(t *testing.T) {
	parser := NewDocumentParserService()

	_, err := parser.ExtractText(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestExtractText_TxtFile(t *testing.T) {
	parser := NewDocumentParserService()

	path := filepath.Join(t.TempDir(), "jd.txt")
	require.NoError(t, os.WriteFile(path, []byte("We need a Go engineer.\n"), 0644))

	text, err := parser.ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "We need a Go engineer.", text)
}

func TestExtractText_ExtensionCaseInsensitive(t *testing.T) {
	parser := NewDocumentParserService()

	path := filepath.Join(t.TempDir(), "jd.TXT")
	require.NoError(t, os.WriteFile(path, []byte("text"), 0644))

	text, err := parser.ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "text", text)
}
