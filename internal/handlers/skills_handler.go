package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"resume-optimizer/internal/models"
	"resume-optimizer/internal/services"
)

type SkillsHandler struct {
	skillExtractor services.SkillExtractorService
}

func NewSkillsHandler(skillExtractor services.SkillExtractorService) *SkillsHandler {
	return &SkillsHandler{
		skillExtractor: skillExtractor,
	}
}

// HandleExtractSkills handles POST /skills. Skill extraction is synchronous;
// there is no model call involved.
func (h *SkillsHandler) HandleExtractSkills(c *fiber.Ctx) error {
	var req models.SkillsRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "text is required",
		})
	}

	skills, err := h.skillExtractor.ExtractSkills(req.Text)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not extract skills from the provided text",
		})
	}

	return c.JSON(models.SkillsResponse{
		Skills:     skills,
		Categories: h.skillExtractor.CategorizeSkills(skills),
	})
}
