package models

import (
	"time"

	"github.com/google/uuid"
)

type ComparisonStatus string

const (
	StatusQueued     ComparisonStatus = "queued"
	StatusProcessing ComparisonStatus = "processing"
	StatusCompleted  ComparisonStatus = "completed"
	StatusFailed     ComparisonStatus = "failed"
)

type Comparison struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ResumeDocumentID uuid.UUID        `gorm:"type:uuid;not null" json:"resume_document_id"`
	JobDocumentID    uuid.UUID        `gorm:"type:uuid;not null" json:"job_document_id"`
	Status           ComparisonStatus `gorm:"not null;default:'queued'" json:"status"`

	OverallSimilarity    *float64 `gorm:"type:decimal(5,4)" json:"overall_similarity,omitempty"`
	AvgSectionSimilarity *float64 `gorm:"type:decimal(5,4)" json:"avg_section_similarity,omitempty"`
	MaxSectionSimilarity *float64 `gorm:"type:decimal(5,4)" json:"max_section_similarity,omitempty"`
	MinSectionSimilarity *float64 `gorm:"type:decimal(5,4)" json:"min_section_similarity,omitempty"`
	SectionPairs         *int     `json:"section_pairs,omitempty"`
	MatchLabel           *string  `gorm:"type:text" json:"match_label,omitempty"`

	// JSON-encoded skill lists and category maps
	ResumeSkills     *string `gorm:"type:jsonb" json:"-"`
	JobSkills        *string `gorm:"type:jsonb" json:"-"`
	ResumeCategories *string `gorm:"type:jsonb" json:"-"`
	JobCategories    *string `gorm:"type:jsonb" json:"-"`
	MatchingSkills   *string `gorm:"type:jsonb" json:"-"`
	MissingSkills    *string `gorm:"type:jsonb" json:"-"`
	ExtraSkills      *string `gorm:"type:jsonb" json:"-"`

	Recommendation *string `gorm:"type:text" json:"recommendation,omitempty"`

	ErrorMessage *string   `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	ResumeDocument Document `gorm:"foreignKey:ResumeDocumentID" json:"-"`
	JobDocument    Document `gorm:"foreignKey:JobDocumentID" json:"-"`
}

func (Comparison) TableName() string {
	return "comparisons"
}
