package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTagger returns a fixed token sequence regardless of input.
type stubTagger struct {
	tokens []TaggedToken
}

func (s *stubTagger) Tag(text string) ([]TaggedToken, error) {
	return s.tokens, nil
}

func newExtractorWithTokens(tokens []TaggedToken) SkillExtractorService {
	return NewSkillExtractorService(&stubTagger{tokens: tokens})
}

func TestExtractSkills_VocabularyWholeWord(t *testing.T) {
	extractor := newExtractorWithTokens(nil)

	skills, err := extractor.ExtractSkills("I have experience in Python, Java, and Django")
	require.NoError(t, err)

	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "java")
	assert.Contains(t, skills, "django")
}

func TestExtractSkills_MultiWordVocabulary(t *testing.T) {
	extractor := newExtractorWithTokens(nil)

	// "problem solving" matches via its space-removed form
	skills, err := extractor.ExtractSkills("strong problemsolving background with sql server databases")
	require.NoError(t, err)

	assert.Contains(t, skills, "problem solving")
	assert.Contains(t, skills, "sql server")
}

func TestExtractSkills_EmptyInput(t *testing.T) {
	extractor := newExtractorWithTokens(nil)

	skills, err := extractor.ExtractSkills("   ")
	require.NoError(t, err)
	assert.Empty(t, skills)

	categories := extractor.CategorizeSkills(skills)
	assert.Empty(t, categories)
}

func TestExtractSkills_POSCandidates(t *testing.T) {
	tokens := []TaggedToken{
		{Text: "kubernetes", POS: posProperNoun, Head: -1},
		{Text: "experience", POS: posNoun, Head: -1}, // excluded token
		{Text: "the", POS: "DT", Head: -1},
		{Text: "team", POS: posNoun, Head: -1}, // stop-listed candidate
		{Text: "db", POS: posNoun, Head: -1},   // too short
	}
	extractor := newExtractorWithTokens(tokens)

	skills, err := extractor.ExtractSkills("kubernetes experience the team db")
	require.NoError(t, err)

	assert.Contains(t, skills, "kubernetes")
	assert.NotContains(t, skills, "experience")
	assert.NotContains(t, skills, "the")
	assert.NotContains(t, skills, "team")
	assert.NotContains(t, skills, "db")
}

func TestExtractSkills_CompoundPhrase(t *testing.T) {
	tokens := []TaggedToken{
		{Text: "machine", POS: posNoun, Dep: depCompound, Head: 1},
		{Text: "learning", POS: posNoun, Head: -1},
	}
	extractor := newExtractorWithTokens(tokens)

	skills, err := extractor.ExtractSkills("machine learning")
	require.NoError(t, err)

	assert.Contains(t, skills, "machine learning")
}

func TestExtractSkills_SortedAndDeduplicated(t *testing.T) {
	tokens := []TaggedToken{
		{Text: "python", POS: posProperNoun, Head: -1}, // duplicate of vocab match
		{Text: "terraform", POS: posProperNoun, Head: -1},
	}
	extractor := newExtractorWithTokens(tokens)

	skills, err := extractor.ExtractSkills("Python and terraform and AWS")
	require.NoError(t, err)

	assert.IsNonDecreasing(t, skills)

	seen := make(map[string]int)
	for _, skill := range skills {
		seen[skill]++
	}
	assert.Equal(t, 1, seen["python"])
	assert.Contains(t, skills, "terraform")
	assert.Contains(t, skills, "aws")
}

func TestSkillsGap(t *testing.T) {
	extractor := newExtractorWithTokens(nil)

	resume := []string{"django", "git", "python"}
	job := []string{"docker", "kubernetes", "python"}

	gap := extractor.SkillsGap(resume, job)

	assert.Equal(t, []string{"python"}, gap.Matching)
	assert.Equal(t, []string{"docker", "kubernetes"}, gap.Missing)
	assert.Equal(t, []string{"django", "git"}, gap.Extra)
}

func TestSkillsGap_EmptyInputs(t *testing.T) {
	extractor := newExtractorWithTokens(nil)

	gap := extractor.SkillsGap(nil, []string{"python"})
	assert.Empty(t, gap.Matching)
	assert.Equal(t, []string{"python"}, gap.Missing)
	assert.Empty(t, gap.Extra)

	gap = extractor.SkillsGap(nil, nil)
	assert.Empty(t, gap.Matching)
	assert.Empty(t, gap.Missing)
	assert.Empty(t, gap.Extra)
}

func TestCategorizeSkills_SingleCategoryAndSubset(t *testing.T) {
	extractor := newExtractorWithTokens(nil)

	skills := []string{"python", "django", "mysql", "git", "agile", "somethingelse"}
	categorized := extractor.CategorizeSkills(skills)

	assert.Equal(t, []string{"python"}, categorized["programming languages"])
	assert.Equal(t, []string{"django"}, categorized["frameworks"])
	assert.Equal(t, []string{"mysql"}, categorized["databases"])
	assert.Equal(t, []string{"git"}, categorized["tools"])
	assert.Equal(t, []string{"agile"}, categorized["methodologies"])

	// Empty categories are omitted
	_, ok := categorized["soft skills"]
	assert.False(t, ok)

	// No skill appears in two categories; union is a subset of the input
	input := make(map[string]bool)
	for _, skill := range skills {
		input[skill] = true
	}
	seen := make(map[string]bool)
	for _, categorySkills := range categorized {
		for _, skill := range categorySkills {
			assert.False(t, seen[skill], "skill %q assigned twice", skill)
			seen[skill] = true
			assert.True(t, input[skill], "skill %q not in input", skill)
		}
	}

	// Unmatched skills are dropped from the category map
	assert.False(t, seen["somethingelse"])
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "python and go", normalizeText("  Python \t AND\n\nGo  "))
}
