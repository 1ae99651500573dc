package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resume-optimizer/internal/models"
	"resume-optimizer/internal/services"
)

type mockDocumentRepository struct {
	mock.Mock
}

func (m *mockDocumentRepository) Create(document *models.Document) error {
	args := m.Called(document)
	return args.Error(0)
}

func (m *mockDocumentRepository) FindByID(id uuid.UUID) (*models.Document, error) {
	args := m.Called(id)
	if doc := args.Get(0); doc != nil {
		return doc.(*models.Document), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDocumentRepository) FindByType(docType string) ([]models.Document, error) {
	args := m.Called(docType)
	if docs := args.Get(0); docs != nil {
		return docs.([]models.Document), args.Error(1)
	}
	return nil, args.Error(1)
}

func newUploadApp(t *testing.T, docRepo *mockDocumentRepository) *fiber.App {
	storage := services.NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	handler := NewUploadHandler(docRepo, storage, 1024*1024)

	app := fiber.New()
	app.Post("/api/v1/upload", handler.HandleUpload)
	return app
}

func multipartBody(t *testing.T, files map[string]string, values map[string]string) (*bytes.Buffer, string) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	for field, filename := range files {
		part, err := writer.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("file content"))
		require.NoError(t, err)
	}
	for field, value := range values {
		require.NoError(t, writer.WriteField(field, value))
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestHandleUpload_PastedJobDescription(t *testing.T) {
	docRepo := new(mockDocumentRepository)
	docRepo.On("Create", mock.Anything).Return(nil)

	app := newUploadApp(t, docRepo)

	body, contentType := multipartBody(t, nil, map[string]string{
		"jd_text": "We are looking for a Go engineer with PostgreSQL experience.",
	})

	req := httptest.NewRequest("POST", "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var response struct {
		Documents []models.UploadResponse `json:"documents"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	require.Len(t, response.Documents, 1)
	assert.Equal(t, models.DocTypeJobDescription, response.Documents[0].DocType)

	docRepo.AssertExpectations(t)
}

func TestHandleUpload_ResumeFile(t *testing.T) {
	docRepo := new(mockDocumentRepository)
	docRepo.On("Create", mock.Anything).Return(nil)

	app := newUploadApp(t, docRepo)

	body, contentType := multipartBody(t, map[string]string{
		"resume": "my_resume.pdf",
	}, nil)

	req := httptest.NewRequest("POST", "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var response struct {
		Documents []models.UploadResponse `json:"documents"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	require.Len(t, response.Documents, 1)
	assert.Equal(t, models.DocTypeResume, response.Documents[0].DocType)
	assert.Equal(t, "my_resume.pdf", response.Documents[0].OriginalName)

	docRepo.AssertExpectations(t)
}

func TestHandleUpload_ResumeRejectsTxt(t *testing.T) {
	docRepo := new(mockDocumentRepository)

	app := newUploadApp(t, docRepo)

	// Plain text is only accepted for job descriptions
	body, contentType := multipartBody(t, map[string]string{
		"resume": "my_resume.txt",
	}, nil)

	req := httptest.NewRequest("POST", "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	docRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestHandleUpload_CreateFailureCleansUpFile(t *testing.T) {
	docRepo := new(mockDocumentRepository)
	docRepo.On("Create", mock.Anything).Return(assert.AnError)

	uploadDir := t.TempDir()
	storage := services.NewStorageService(uploadDir)
	require.NoError(t, storage.EnsureUploadDir())

	handler := NewUploadHandler(docRepo, storage, 1024*1024)
	app := fiber.New()
	app.Post("/api/v1/upload", handler.HandleUpload)

	body, contentType := multipartBody(t, map[string]string{
		"resume": "my_resume.pdf",
	}, nil)

	req := httptest.NewRequest("POST", "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	// The stored file is removed when the record cannot be saved.
	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHandleUpload_NoDocuments(t *testing.T) {
	docRepo := new(mockDocumentRepository)

	app := newUploadApp(t, docRepo)

	body, contentType := multipartBody(t, nil, map[string]string{"unrelated": "field"})

	req := httptest.NewRequest("POST", "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
