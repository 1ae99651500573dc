package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resume-optimizer/internal/models"
)

type ComparisonRepository interface {
	Create(comparison *models.Comparison) error
	FindByID(id uuid.UUID) (*models.Comparison, error)
	UpdateStatus(id uuid.UUID, status models.ComparisonStatus) error
	UpdateResult(id uuid.UUID, result *ComparisonUpdateData) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingJobs(limit int) ([]models.Comparison, error)
}

type ComparisonUpdateData struct {
	OverallSimilarity    *float64
	AvgSectionSimilarity *float64
	MaxSectionSimilarity *float64
	MinSectionSimilarity *float64
	SectionPairs         *int
	MatchLabel           *string
	ResumeSkills         *string
	JobSkills            *string
	ResumeCategories     *string
	JobCategories        *string
	MatchingSkills       *string
	MissingSkills        *string
	ExtraSkills          *string
	Recommendation       *string
}

type comparisonRepository struct {
	db *gorm.DB
}

func NewComparisonRepository(db *gorm.DB) ComparisonRepository {
	return &comparisonRepository{db: db}
}

func (r *comparisonRepository) Create(comparison *models.Comparison) error {
	if err := r.db.Create(comparison).Error; err != nil {
		return fmt.Errorf("failed to create comparison: %w", err)
	}
	return nil
}

func (r *comparisonRepository) FindByID(id uuid.UUID) (*models.Comparison, error) {
	var comparison models.Comparison
	if err := r.db.Where("id = ?", id).First(&comparison).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("comparison not found")
		}
		return nil, fmt.Errorf("failed to find comparison: %w", err)
	}
	return &comparison, nil
}

func (r *comparisonRepository) UpdateStatus(id uuid.UUID, status models.ComparisonStatus) error {
	result := r.db.Model(&models.Comparison{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("comparison not found")
	}

	return nil
}

func (r *comparisonRepository) UpdateResult(id uuid.UUID, data *ComparisonUpdateData) error {
	updates := map[string]interface{}{
		"status":     models.StatusCompleted,
		"updated_at": time.Now(),
	}

	if data.OverallSimilarity != nil {
		updates["overall_similarity"] = *data.OverallSimilarity
	}
	if data.AvgSectionSimilarity != nil {
		updates["avg_section_similarity"] = *data.AvgSectionSimilarity
	}
	if data.MaxSectionSimilarity != nil {
		updates["max_section_similarity"] = *data.MaxSectionSimilarity
	}
	if data.MinSectionSimilarity != nil {
		updates["min_section_similarity"] = *data.MinSectionSimilarity
	}
	if data.SectionPairs != nil {
		updates["section_pairs"] = *data.SectionPairs
	}
	if data.MatchLabel != nil {
		updates["match_label"] = *data.MatchLabel
	}
	if data.ResumeSkills != nil {
		updates["resume_skills"] = *data.ResumeSkills
	}
	if data.JobSkills != nil {
		updates["job_skills"] = *data.JobSkills
	}
	if data.ResumeCategories != nil {
		updates["resume_categories"] = *data.ResumeCategories
	}
	if data.JobCategories != nil {
		updates["job_categories"] = *data.JobCategories
	}
	if data.MatchingSkills != nil {
		updates["matching_skills"] = *data.MatchingSkills
	}
	if data.MissingSkills != nil {
		updates["missing_skills"] = *data.MissingSkills
	}
	if data.ExtraSkills != nil {
		updates["extra_skills"] = *data.ExtraSkills
	}
	if data.Recommendation != nil {
		updates["recommendation"] = *data.Recommendation
	}

	result := r.db.Model(&models.Comparison{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update result: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("comparison not found")
	}

	return nil
}

func (r *comparisonRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.Comparison{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("comparison not found")
	}

	return nil
}

func (r *comparisonRepository) FindPendingJobs(limit int) ([]models.Comparison, error) {
	var comparisons []models.Comparison
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&comparisons).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending jobs: %w", err)
	}

	return comparisons, nil
}
