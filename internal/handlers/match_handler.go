package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-optimizer/internal/models"
	"resume-optimizer/internal/repositories"
	"resume-optimizer/internal/services"
)

type MatchHandler struct {
	docRepo    repositories.DocumentRepository
	parser     services.DocumentParserService
	embedder   services.Embedder
	similarity services.SimilarityService
	jobIndex   services.JobIndexService
}

func NewMatchHandler(
	docRepo repositories.DocumentRepository,
	parser services.DocumentParserService,
	embedder services.Embedder,
	similarity services.SimilarityService,
	jobIndex services.JobIndexService,
) *MatchHandler {
	return &MatchHandler{
		docRepo:    docRepo,
		parser:     parser,
		embedder:   embedder,
		similarity: similarity,
		jobIndex:   jobIndex,
	}
}

// HandleFindMatches handles POST /matches. It ranks the stored job
// description corpus against the given resume.
func (h *MatchHandler) HandleFindMatches(c *fiber.Ctx) error {
	var req models.MatchesRequest

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

	resumeDocID, err := uuid.Parse(req.ResumeDocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume_document_id format",
		})
	}

	resumeDoc, err := h.docRepo.FindByID(resumeDocID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume document not found",
		})
	}

	resumeText, err := h.parser.ExtractText(resumeDoc.FilePath)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "The resume could not be read",
		})
	}

	topK := req.TopK
	if topK <= 0 {
		topK = 5
	}

	embeddings, err := h.embedder.EmbedTexts(c.Context(), []string{resumeText})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Similarity scoring failed. Please try again later.",
		})
	}

	results, err := h.jobIndex.SearchJobs(c.Context(), embeddings[0], topK)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to search job descriptions",
		})
	}

	matches := make([]models.JobMatch, 0, len(results))
	for _, result := range results {
		matches = append(matches, models.JobMatch{
			DocumentID: result.DocID,
			Filename:   result.Filename,
			Score:      float64(result.Score),
			Label:      h.similarity.ScoreLabel(float64(result.Score)),
		})
	}

	return c.JSON(models.MatchesResponse{Matches: matches})
}
