package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Embedder encodes a batch of texts into fixed-length vectors. Any model
// preserving this interface is substitutable.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// SimilarityResult holds the metrics of one resume / job-description
// comparison. All values lie in [0,1]; the section metrics are 0.0 when no
// section pairs exist.
type SimilarityResult struct {
	OverallSimilarity    float64 `json:"overall_similarity"`
	AvgSectionSimilarity float64 `json:"avg_section_similarity"`
	MaxSectionSimilarity float64 `json:"max_section_similarity"`
	MinSectionSimilarity float64 `json:"min_section_similarity"`
	SectionPairs         int     `json:"section_pairs"`
}

type Match struct {
	Index int
	Score float64
}

type SimilarityService interface {
	ComputeSimilarity(ctx context.Context, textA, textB string) (float64, error)
	Compare(ctx context.Context, resumeText, jdText string) (*SimilarityResult, error)
	FindBestMatches(ctx context.Context, resumeText string, candidates []string, topK int) ([]Match, error)
	ScoreLabel(score float64) string
	Recommendation(score float64, missingSkills []string) string
}

type similarityService struct {
	embedder Embedder
}

func NewSimilarityService(embedder Embedder) SimilarityService {
	return &similarityService{embedder: embedder}
}

// ComputeSimilarity encodes both texts as a single two-element batch and
// returns the cosine similarity of the vectors. Empty input on either side
// short-circuits to 0.0 without invoking the model.
func (s *similarityService) ComputeSimilarity(ctx context.Context, textA, textB string) (float64, error) {
	if strings.TrimSpace(textA) == "" || strings.TrimSpace(textB) == "" {
		return 0.0, nil
	}

	embeddings, err := s.embedder.EmbedTexts(ctx, []string{textA, textB})
	if err != nil {
		return 0, fmt.Errorf("failed to embed texts: %w", err)
	}
	if len(embeddings) != 2 {
		return 0, fmt.Errorf("expected 2 embeddings, got %d", len(embeddings))
	}

	return cosineSimilarity(embeddings[0], embeddings[1]), nil
}

// Compare computes the overall similarity of the two full texts plus the
// mean, max, and min over the Cartesian product of their sections.
func (s *similarityService) Compare(ctx context.Context, resumeText, jdText string) (*SimilarityResult, error) {
	overall, err := s.ComputeSimilarity(ctx, resumeText, jdText)
	if err != nil {
		return nil, err
	}

	result := &SimilarityResult{OverallSimilarity: overall}

	resumeSections := SplitSections(resumeText)
	jdSections := SplitSections(jdText)
	if len(resumeSections) == 0 || len(jdSections) == 0 {
		return result, nil
	}

	// One batch for every section of both documents.
	texts := make([]string, 0, len(resumeSections)+len(jdSections))
	texts = append(texts, resumeSections...)
	texts = append(texts, jdSections...)

	embeddings, err := s.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed sections: %w", err)
	}
	if len(embeddings) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(embeddings))
	}

	resumeVecs := embeddings[:len(resumeSections)]
	jdVecs := embeddings[len(resumeSections):]

	var sum float64
	minSim := math.Inf(1)
	maxSim := math.Inf(-1)
	for _, rv := range resumeVecs {
		for _, jv := range jdVecs {
			sim := cosineSimilarity(rv, jv)
			sum += sim
			minSim = math.Min(minSim, sim)
			maxSim = math.Max(maxSim, sim)
		}
	}

	pairs := len(resumeVecs) * len(jdVecs)
	result.SectionPairs = pairs
	result.AvgSectionSimilarity = sum / float64(pairs)
	result.MaxSectionSimilarity = maxSim
	result.MinSectionSimilarity = minSim

	return result, nil
}

// FindBestMatches scores the resume against every candidate text and returns
// the top-k (index, score) pairs in descending score order. Ties keep the
// original candidate order.
func (s *similarityService) FindBestMatches(ctx context.Context, resumeText string, candidates []string, topK int) ([]Match, error) {
	if topK <= 0 {
		topK = 5
	}

	matches := make([]Match, len(candidates))
	for i := range candidates {
		matches[i] = Match{Index: i}
	}

	if strings.TrimSpace(resumeText) != "" {
		// Embed the resume together with every non-empty candidate in
		// one batch; empty candidates score 0.0 without a model call.
		texts := []string{resumeText}
		embedIdx := make([]int, 0, len(candidates))
		for i, candidate := range candidates {
			if strings.TrimSpace(candidate) != "" {
				texts = append(texts, candidate)
				embedIdx = append(embedIdx, i)
			}
		}

		if len(embedIdx) > 0 {
			embeddings, err := s.embedder.EmbedTexts(ctx, texts)
			if err != nil {
				return nil, fmt.Errorf("failed to embed candidates: %w", err)
			}
			if len(embeddings) != len(texts) {
				return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(embeddings))
			}

			resumeVec := embeddings[0]
			for j, i := range embedIdx {
				matches[i].Score = cosineSimilarity(resumeVec, embeddings[j+1])
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if topK < len(matches) {
		matches = matches[:topK]
	}
	return matches, nil
}

// ScoreLabel converts a similarity score to a qualitative assessment.
// Boundary values belong to the higher band.
func (s *similarityService) ScoreLabel(score float64) string {
	switch {
	case score >= 0.8:
		return "Excellent match"
	case score >= 0.6:
		return "Good match"
	case score >= 0.4:
		return "Fair match"
	case score >= 0.2:
		return "Poor match"
	default:
		return "Very poor match"
	}
}

// maxRecommendedSkills caps how many missing skills a recommendation names.
const maxRecommendedSkills = 5

// Recommendation turns the overall score and the missing-skill list into
// advice text. The excellent band never mentions missing skills; the lower
// bands name at most five.
func (s *similarityService) Recommendation(score float64, missingSkills []string) string {
	if score >= 0.8 {
		return "Excellent match! Your resume is well-aligned with this job description. " +
			"Consider tailoring your resume further by emphasizing the matching skills in your experience section."
	}

	if len(missingSkills) > maxRecommendedSkills {
		missingSkills = missingSkills[:maxRecommendedSkills]
	}
	listed := strings.Join(missingSkills, ", ")

	switch {
	case score >= 0.6:
		msg := "Good match! Your resume has strong alignment with the job requirements."
		if listed != "" {
			msg += " Consider highlighting or acquiring these skills: " + listed + "."
		}
		return msg
	case score >= 0.4:
		msg := "Fair match. Your resume partially matches the job requirements."
		if listed != "" {
			msg += " Focus on developing these key skills: " + listed + "."
		}
		return msg
	default:
		msg := "Poor match. Significant gaps exist between your resume and job requirements."
		if listed != "" {
			msg += " Priority skills to develop: " + listed + "."
		}
		return msg
	}
}

// SplitSections splits a document into its blank-line-separated sections,
// trimmed, with empty sections dropped.
func SplitSections(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var sections []string
	for _, section := range strings.Split(text, "\n\n") {
		section = strings.TrimSpace(section)
		if section != "" {
			sections = append(sections, section)
		}
	}
	return sections
}

// cosineSimilarity returns the cosine of the angle between two vectors,
// clamped to [0,1]. Zero vectors or mismatched lengths score 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Min(1, math.Max(0, sim))
}
