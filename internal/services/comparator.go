package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"resume-optimizer/internal/models"
	"resume-optimizer/internal/repositories"
)

type ComparatorService interface {
	RunComparison(ctx context.Context, comparisonID uuid.UUID) error
}

type comparatorService struct {
	compRepo   repositories.ComparisonRepository
	docRepo    repositories.DocumentRepository
	parser     DocumentParserService
	skills     SkillExtractorService
	similarity SimilarityService
	embedder   Embedder
	jobIndex   JobIndexService
}

func NewComparatorService(
	compRepo repositories.ComparisonRepository,
	docRepo repositories.DocumentRepository,
	parser DocumentParserService,
	skills SkillExtractorService,
	similarity SimilarityService,
	embedder Embedder,
	jobIndex JobIndexService,
) ComparatorService {
	return &comparatorService{
		compRepo:   compRepo,
		docRepo:    docRepo,
		parser:     parser,
		skills:     skills,
		similarity: similarity,
		embedder:   embedder,
		jobIndex:   jobIndex,
	}
}

func (c *comparatorService) RunComparison(ctx context.Context, comparisonID uuid.UUID) error {
	// Update status to processing
	if err := c.compRepo.UpdateStatus(comparisonID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting comparison for job ID: %s\n", comparisonID)

	comparison, err := c.compRepo.FindByID(comparisonID)
	if err != nil {
		c.compRepo.UpdateError(comparisonID, err.Error())
		return fmt.Errorf("failed to get comparison: %w", err)
	}

	resumeDoc, err := c.docRepo.FindByID(comparison.ResumeDocumentID)
	if err != nil {
		c.compRepo.UpdateError(comparisonID, "Resume document not found")
		return fmt.Errorf("failed to get resume document: %w", err)
	}

	jobDoc, err := c.docRepo.FindByID(comparison.JobDocumentID)
	if err != nil {
		c.compRepo.UpdateError(comparisonID, "Job description document not found")
		return fmt.Errorf("failed to get job document: %w", err)
	}

	// Step 1: Parse both documents. Each document's pipeline is isolated:
	// both are attempted even when one fails, and the failure message
	// names the document it belongs to.
	log.Println("📄 Parsing resume and job description...")
	resumeText, resumeErr := c.parser.ExtractText(resumeDoc.FilePath)
	jdText, jdErr := c.parser.ExtractText(jobDoc.FilePath)

	if resumeErr != nil || jdErr != nil {
		msg := parseFailureMessage(resumeErr, jdErr)
		c.compRepo.UpdateError(comparisonID, msg)
		return fmt.Errorf("failed to parse documents: %s", msg)
	}

	// Step 2: Extract and categorize skills for both documents
	log.Println("🔎 Extracting skills...")
	resumeSkills, err := c.skills.ExtractSkills(resumeText)
	if err != nil {
		c.compRepo.UpdateError(comparisonID, "Could not extract skills from the resume")
		return fmt.Errorf("failed to extract resume skills: %w", err)
	}

	jobSkills, err := c.skills.ExtractSkills(jdText)
	if err != nil {
		c.compRepo.UpdateError(comparisonID, "Could not extract skills from the job description")
		return fmt.Errorf("failed to extract job skills: %w", err)
	}

	resumeCategories := c.skills.CategorizeSkills(resumeSkills)
	jobCategories := c.skills.CategorizeSkills(jobSkills)
	gap := c.skills.SkillsGap(resumeSkills, jobSkills)

	// Step 3: Compute similarity metrics
	log.Println("🧮 Computing similarity...")
	simResult, err := c.similarity.Compare(ctx, resumeText, jdText)
	if err != nil {
		c.compRepo.UpdateError(comparisonID, "Similarity scoring failed. Please try again later.")
		return fmt.Errorf("failed to compute similarity: %w", err)
	}

	label := c.similarity.ScoreLabel(simResult.OverallSimilarity)
	recommendation := c.similarity.Recommendation(simResult.OverallSimilarity, gap.Missing)

	// Step 4: Save results
	log.Println("💾 Saving comparison results...")
	updateData := &repositories.ComparisonUpdateData{
		OverallSimilarity:    &simResult.OverallSimilarity,
		AvgSectionSimilarity: &simResult.AvgSectionSimilarity,
		MaxSectionSimilarity: &simResult.MaxSectionSimilarity,
		MinSectionSimilarity: &simResult.MinSectionSimilarity,
		SectionPairs:         &simResult.SectionPairs,
		MatchLabel:           &label,
		Recommendation:       &recommendation,
	}

	if updateData.ResumeSkills, err = marshalJSON(resumeSkills); err != nil {
		return fmt.Errorf("failed to encode resume skills: %w", err)
	}
	if updateData.JobSkills, err = marshalJSON(jobSkills); err != nil {
		return fmt.Errorf("failed to encode job skills: %w", err)
	}
	if updateData.ResumeCategories, err = marshalJSON(resumeCategories); err != nil {
		return fmt.Errorf("failed to encode resume categories: %w", err)
	}
	if updateData.JobCategories, err = marshalJSON(jobCategories); err != nil {
		return fmt.Errorf("failed to encode job categories: %w", err)
	}
	if updateData.MatchingSkills, err = marshalJSON(gap.Matching); err != nil {
		return fmt.Errorf("failed to encode matching skills: %w", err)
	}
	if updateData.MissingSkills, err = marshalJSON(gap.Missing); err != nil {
		return fmt.Errorf("failed to encode missing skills: %w", err)
	}
	if updateData.ExtraSkills, err = marshalJSON(gap.Extra); err != nil {
		return fmt.Errorf("failed to encode extra skills: %w", err)
	}

	if err := c.compRepo.UpdateResult(comparisonID, updateData); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	// Step 5: Index the job description for corpus-wide matching. Index
	// failures do not fail the comparison.
	if err := c.indexJobDescription(ctx, jobDoc, jdText); err != nil {
		log.Printf("⚠️  Failed to index job description %s: %v\n", jobDoc.ID, err)
	}

	log.Printf("✅ Comparison completed successfully for job ID: %s\n", comparisonID)
	return nil
}

func (c *comparatorService) indexJobDescription(ctx context.Context, jobDoc *models.Document, jdText string) error {
	if c.jobIndex == nil || jdText == "" {
		return nil
	}

	embeddings, err := c.embedder.EmbedTexts(ctx, []string{jdText})
	if err != nil {
		return fmt.Errorf("failed to embed job description: %w", err)
	}

	return c.jobIndex.UpsertJob(ctx, jobDoc.ID.String(), jobDoc.OriginalFileName, jdText, embeddings[0])
}

// parseFailureMessage builds the human-readable message for failed parses,
// naming every document that failed.
func parseFailureMessage(resumeErr, jdErr error) string {
	var msg string
	if resumeErr != nil {
		msg = "Resume: " + describeParseError(resumeErr)
	}
	if jdErr != nil {
		if msg != "" {
			msg += "; "
		}
		msg += "Job description: " + describeParseError(jdErr)
	}
	return msg
}

func describeParseError(err error) string {
	switch {
	case errors.Is(err, ErrFileNotFound):
		return "the uploaded file could not be found"
	case errors.Is(err, ErrUnsupportedFormat):
		return "the file format is not supported"
	case errors.Is(err, ErrCorruptDocument):
		return "the document could not be read"
	default:
		return "the document could not be processed"
	}
}

func marshalJSON(v interface{}) (*string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := string(data)
	return &s, nil
}
