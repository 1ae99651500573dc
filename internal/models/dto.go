package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	DocType      string `json:"doc_type"`
}

type CompareRequest struct {
	ResumeDocumentID string `json:"resume_document_id" validate:"required,uuid"`
	JobDocumentID    string `json:"job_document_id" validate:"required,uuid"`
}

type CompareResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type SkillsRequest struct {
	Text string `json:"text"`
}

type SkillsResponse struct {
	Skills     []string            `json:"skills"`
	Categories map[string][]string `json:"categories"`
}

type MatchesRequest struct {
	ResumeDocumentID string `json:"resume_document_id" validate:"required,uuid"`
	TopK             int    `json:"top_k"`
}

type JobMatch struct {
	DocumentID string  `json:"document_id"`
	Filename   string  `json:"filename"`
	Score      float64 `json:"score"`
	Label      string  `json:"label"`
}

type MatchesResponse struct {
	Matches []JobMatch `json:"matches"`
}

type ResultResponse struct {
	ID           string          `json:"id"`
	Status       string          `json:"status"`
	Result       *ComparisonData `json:"result,omitempty"`
	ErrorMessage *string         `json:"error_message,omitempty"`
}

type ComparisonData struct {
	OverallSimilarity    float64             `json:"overall_similarity"`
	AvgSectionSimilarity float64             `json:"avg_section_similarity"`
	MaxSectionSimilarity float64             `json:"max_section_similarity"`
	MinSectionSimilarity float64             `json:"min_section_similarity"`
	SectionPairs         int                 `json:"section_pairs"`
	MatchLabel           string              `json:"match_label"`
	ResumeSkills         []string            `json:"resume_skills"`
	JobSkills            []string            `json:"job_skills"`
	ResumeCategories     map[string][]string `json:"resume_categories"`
	JobCategories        map[string][]string `json:"job_categories"`
	MatchingSkills       []string            `json:"matching_skills"`
	MissingSkills        []string            `json:"missing_skills"`
	ExtraSkills          []string            `json:"extra_skills"`
	Recommendation       string              `json:"recommendation"`
}
