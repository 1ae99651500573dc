package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-optimizer/internal/models"
	"resume-optimizer/internal/repositories"
	"resume-optimizer/internal/services"
)

type CompareHandler struct {
	compRepo repositories.ComparisonRepository
	docRepo  repositories.DocumentRepository
	worker   services.Worker
}

func NewCompareHandler(
	compRepo repositories.ComparisonRepository,
	docRepo repositories.DocumentRepository,
	worker services.Worker,
) *CompareHandler {
	return &CompareHandler{
		compRepo: compRepo,
		docRepo:  docRepo,
		worker:   worker,
	}
}

// HandleCompare handles POST /compare
func (h *CompareHandler) HandleCompare(c *fiber.Ctx) error {
	var req models.CompareRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.ResumeDocumentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_document_id is required",
		})
	}

	if req.JobDocumentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_document_id is required",
		})
	}

	// Parse UUIDs
	resumeDocID, err := uuid.Parse(req.ResumeDocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume_document_id format",
		})
	}

	jobDocID, err := uuid.Parse(req.JobDocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job_document_id format",
		})
	}

	// Verify documents exist
	if _, err := h.docRepo.FindByID(resumeDocID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume document not found",
		})
	}

	if _, err := h.docRepo.FindByID(jobDocID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job description document not found",
		})
	}

	// Create comparison record
	comparison := &models.Comparison{
		ID:               uuid.New(),
		ResumeDocumentID: resumeDocID,
		JobDocumentID:    jobDocID,
		Status:           models.StatusQueued,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.compRepo.Create(comparison); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create comparison job",
		})
	}

	// Enqueue job to worker
	h.worker.EnqueueJob(comparison.ID)

	// Return job ID immediately
	return c.Status(fiber.StatusAccepted).JSON(models.CompareResponse{
		ID:     comparison.ID.String(),
		Status: string(models.StatusQueued),
	})
}
