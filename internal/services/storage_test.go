package services

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-optimizer/internal/models"
)

func TestStorageService_SaveText(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	filename, filePath, err := storage.SaveText("pasted job description", models.DocTypeJobDescription)
	require.NoError(t, err)
	assert.Contains(t, filename, models.DocTypeJobDescription)
	assert.Contains(t, filename, ".txt")

	content, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, "pasted job description", string(content))

	require.NoError(t, storage.DeleteFile(filename))
	_, err = os.Stat(filePath)
	assert.True(t, os.IsNotExist(err))
}

func TestStorageService_DeleteMissingFile(t *testing.T) {
	storage := NewStorageService(t.TempDir())

	assert.Error(t, storage.DeleteFile("nope.txt"))
}
