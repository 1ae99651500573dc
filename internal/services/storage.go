package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"resume-optimizer/internal/models"
)

// Accepted upload extensions per document type. Resumes come in as PDF or
// DOCX; job descriptions additionally as plain text.
var allowedExtensions = map[string]map[string]bool{
	models.DocTypeResume:         {".pdf": true, ".docx": true},
	models.DocTypeJobDescription: {".pdf": true, ".docx": true, ".txt": true},
}

type StorageService interface {
	SaveFile(file *multipart.FileHeader, docType string) (string, string, error)
	SaveText(text string, docType string) (string, string, error)
	GetFilePath(filename string) string
	DeleteFile(filename string) error
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

func (s *storageService) SaveFile(file *multipart.FileHeader, docType string) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[docType][ext] {
		return "", "", fmt.Errorf("%w: %s for %s", ErrUnsupportedFormat, ext, docType)
	}

	// Generate the unique filename
	uniqueFilename := fmt.Sprintf("%s_%s%s", docType, uuid.New().String(), ext)
	filePath := filepath.Join(s.uploadPath, uniqueFilename)

	// Open source file
	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Create destination file
	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	// Copy file
	if _, err := io.Copy(dst, src); err != nil {
		// Remove the partial file so failed uploads do not leak to disk
		os.Remove(filePath)
		return "", "", fmt.Errorf("failed to save file: %w", err)
	}

	return uniqueFilename, filePath, nil
}

// SaveText persists pasted text as a .txt document so the rest of the
// pipeline treats it like any other upload.
func (s *storageService) SaveText(text string, docType string) (string, string, error) {
	uniqueFilename := fmt.Sprintf("%s_%s.txt", docType, uuid.New().String())
	filePath := filepath.Join(s.uploadPath, uniqueFilename)

	if err := os.WriteFile(filePath, []byte(text), 0644); err != nil {
		return "", "", fmt.Errorf("failed to save text: %w", err)
	}

	return uniqueFilename, filePath, nil
}

func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.uploadPath, filename)
}

func (s *storageService) DeleteFile(filename string) error {
	filePath := s.GetFilePath(filename)
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
