package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-optimizer/internal/models"
	"resume-optimizer/internal/services"
)

// noopTagger makes skill extraction rely on vocabulary matching only.
type noopTagger struct{}

func (noopTagger) Tag(text string) ([]services.TaggedToken, error) {
	return nil, nil
}

func newSkillsApp() *fiber.App {
	handler := NewSkillsHandler(services.NewSkillExtractorService(noopTagger{}))

	app := fiber.New()
	app.Post("/api/v1/skills", handler.HandleExtractSkills)
	return app
}

func TestHandleExtractSkills_Success(t *testing.T) {
	app := newSkillsApp()

	body, _ := json.Marshal(models.SkillsRequest{
		Text: "I have experience in Python, Java, and Django",
	})
	req := httptest.NewRequest("POST", "/api/v1/skills", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var response models.SkillsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))

	assert.Contains(t, response.Skills, "python")
	assert.Contains(t, response.Skills, "java")
	assert.Contains(t, response.Skills, "django")
	assert.Contains(t, response.Categories["programming languages"], "python")
	assert.Contains(t, response.Categories["frameworks"], "django")
}

func TestHandleExtractSkills_EmptyText(t *testing.T) {
	app := newSkillsApp()

	body, _ := json.Marshal(models.SkillsRequest{Text: "   "})
	req := httptest.NewRequest("POST", "/api/v1/skills", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleExtractSkills_InvalidPayload(t *testing.T) {
	app := newSkillsApp()

	req := httptest.NewRequest("POST", "/api/v1/skills", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
