package handlers

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-optimizer/internal/models"
	"resume-optimizer/internal/repositories"
	"resume-optimizer/internal/services"
)

type UploadHandler struct {
	docRepo        repositories.DocumentRepository
	storageService services.StorageService
	maxFileSize    int64
}

func NewUploadHandler(
	docRepo repositories.DocumentRepository,
	storageService services.StorageService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		docRepo:        docRepo,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /upload. It accepts a 'resume' file (PDF/DOCX),
// a 'job_description' file (PDF/DOCX/TXT), and/or a 'jd_text' form value
// with pasted job description text.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	var responses []models.UploadResponse

	// Process the resume file
	if resumeFiles, exists := form.File["resume"]; exists && len(resumeFiles) > 0 {
		response, errResp := h.saveDocument(resumeFiles[0], models.DocTypeResume)
		if errResp != nil {
			return errResp.send(c)
		}
		responses = append(responses, *response)
	}

	// Process the job description file
	if jdFiles, exists := form.File["job_description"]; exists && len(jdFiles) > 0 {
		response, errResp := h.saveDocument(jdFiles[0], models.DocTypeJobDescription)
		if errResp != nil {
			return errResp.send(c)
		}
		responses = append(responses, *response)
	}

	// Process pasted job description text
	if jdTexts, exists := form.Value["jd_text"]; exists && len(jdTexts) > 0 && strings.TrimSpace(jdTexts[0]) != "" {
		response, errResp := h.savePastedText(jdTexts[0])
		if errResp != nil {
			return errResp.send(c)
		}
		responses = append(responses, *response)
	}

	if len(responses) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No valid documents provided. Upload 'resume' (PDF/DOCX), 'job_description' (PDF/DOCX/TXT), or paste 'jd_text'.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Documents uploaded successfully",
		"documents": responses,
	})
}

type uploadError struct {
	status int
	msg    string
}

func (e *uploadError) send(c *fiber.Ctx) error {
	return c.Status(e.status).JSON(fiber.Map{"error": e.msg})
}

func (h *UploadHandler) saveDocument(file *multipart.FileHeader, docType string) (*models.UploadResponse, *uploadError) {
	if file.Size > h.maxFileSize {
		return nil, &uploadError{
			status: fiber.StatusBadRequest,
			msg:    fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		}
	}

	filename, filePath, err := h.storageService.SaveFile(file, docType)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedFormat) {
			return nil, &uploadError{
				status: fiber.StatusBadRequest,
				msg:    fmt.Sprintf("Unsupported file format for %s", docType),
			}
		}
		return nil, &uploadError{
			status: fiber.StatusInternalServerError,
			msg:    fmt.Sprintf("Failed to save %s file", docType),
		}
	}

	doc := models.Document{
		ID:               uuid.New(),
		Filename:         filename,
		OriginalFileName: file.Filename,
		DocType:          docType,
		FilePath:         filePath,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(&doc); err != nil {
		// Cleanup uploaded file if database insert fails
		if delErr := h.storageService.DeleteFile(filename); delErr != nil {
			log.Printf("⚠️  Failed to clean up orphaned upload %s: %v\n", filename, delErr)
		}
		return nil, &uploadError{
			status: fiber.StatusInternalServerError,
			msg:    fmt.Sprintf("Failed to save %s document record", docType),
		}
	}

	return &models.UploadResponse{
		ID:           doc.ID.String(),
		Filename:     doc.Filename,
		OriginalName: doc.OriginalFileName,
		DocType:      doc.DocType,
	}, nil
}

func (h *UploadHandler) savePastedText(text string) (*models.UploadResponse, *uploadError) {
	filename, filePath, err := h.storageService.SaveText(text, models.DocTypeJobDescription)
	if err != nil {
		return nil, &uploadError{
			status: fiber.StatusInternalServerError,
			msg:    "Failed to save pasted job description",
		}
	}

	doc := models.Document{
		ID:               uuid.New(),
		Filename:         filename,
		OriginalFileName: "pasted_text.txt",
		DocType:          models.DocTypeJobDescription,
		FilePath:         filePath,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(&doc); err != nil {
		if delErr := h.storageService.DeleteFile(filename); delErr != nil {
			log.Printf("⚠️  Failed to clean up orphaned upload %s: %v\n", filename, delErr)
		}
		return nil, &uploadError{
			status: fiber.StatusInternalServerError,
			msg:    "Failed to save pasted job description record",
		}
	}

	return &models.UploadResponse{
		ID:           doc.ID.String(),
		Filename:     doc.Filename,
		OriginalName: doc.OriginalFileName,
		DocType:      doc.DocType,
	}, nil
}
