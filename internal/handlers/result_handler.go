package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-optimizer/internal/models"
	"resume-optimizer/internal/repositories"
)

type ResultHandler struct {
	compRepo repositories.ComparisonRepository
}

func NewResultHandler(compRepo repositories.ComparisonRepository) *ResultHandler {
	return &ResultHandler{
		compRepo: compRepo,
	}
}

func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	// Parse ID from params
	idParam := c.Params("id")
	comparisonID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid comparison ID format",
		})
	}

	// Get comparison
	comparison, err := h.compRepo.FindByID(comparisonID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Comparison not found",
		})
	}

	// Build response based on status
	response := models.ResultResponse{
		ID:     comparison.ID.String(),
		Status: string(comparison.Status),
	}

	// If completed, include results
	if comparison.Status == models.StatusCompleted {
		response.Result = buildComparisonData(comparison)
	}

	// If failed, include error message
	if comparison.Status == models.StatusFailed && comparison.ErrorMessage != nil {
		response.ErrorMessage = comparison.ErrorMessage
	}

	return c.JSON(response)
}

func buildComparisonData(comparison *models.Comparison) *models.ComparisonData {
	data := &models.ComparisonData{
		ResumeSkills:     []string{},
		JobSkills:        []string{},
		ResumeCategories: map[string][]string{},
		JobCategories:    map[string][]string{},
		MatchingSkills:   []string{},
		MissingSkills:    []string{},
		ExtraSkills:      []string{},
	}

	if comparison.OverallSimilarity != nil {
		data.OverallSimilarity = *comparison.OverallSimilarity
	}
	if comparison.AvgSectionSimilarity != nil {
		data.AvgSectionSimilarity = *comparison.AvgSectionSimilarity
	}
	if comparison.MaxSectionSimilarity != nil {
		data.MaxSectionSimilarity = *comparison.MaxSectionSimilarity
	}
	if comparison.MinSectionSimilarity != nil {
		data.MinSectionSimilarity = *comparison.MinSectionSimilarity
	}
	if comparison.SectionPairs != nil {
		data.SectionPairs = *comparison.SectionPairs
	}
	if comparison.MatchLabel != nil {
		data.MatchLabel = *comparison.MatchLabel
	}
	if comparison.Recommendation != nil {
		data.Recommendation = *comparison.Recommendation
	}

	if comparison.ResumeSkills != nil {
		json.Unmarshal([]byte(*comparison.ResumeSkills), &data.ResumeSkills)
	}
	if comparison.JobSkills != nil {
		json.Unmarshal([]byte(*comparison.JobSkills), &data.JobSkills)
	}
	if comparison.ResumeCategories != nil {
		json.Unmarshal([]byte(*comparison.ResumeCategories), &data.ResumeCategories)
	}
	if comparison.JobCategories != nil {
		json.Unmarshal([]byte(*comparison.JobCategories), &data.JobCategories)
	}
	if comparison.MatchingSkills != nil {
		json.Unmarshal([]byte(*comparison.MatchingSkills), &data.MatchingSkills)
	}
	if comparison.MissingSkills != nil {
		json.Unmarshal([]byte(*comparison.MissingSkills), &data.MissingSkills)
	}
	if comparison.ExtraSkills != nil {
		json.Unmarshal([]byte(*comparison.ExtraSkills), &data.ExtraSkills)
	}

	return data
}
