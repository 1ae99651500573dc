package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

type SkillExtractorService interface {
	ExtractSkills(text string) ([]string, error)
	CategorizeSkills(skills []string) map[string][]string
	SkillsGap(resumeSkills, jobSkills []string) *SkillsGap
}

// SkillsGap is the set arithmetic of a resume against a job description:
// Matching is the intersection, Missing is what the job wants and the resume
// lacks, Extra is what the resume has beyond the job. All three are sorted.
type SkillsGap struct {
	Matching []string
	Missing  []string
	Extra    []string
}

type skillExtractorService struct {
	tagger       Tagger
	allSkills    map[string]bool
	categorySets []map[string]bool
}

func NewSkillExtractorService(tagger Tagger) SkillExtractorService {
	allSkills := make(map[string]bool)
	categorySets := make([]map[string]bool, len(skillVocabulary))

	for i, category := range skillVocabulary {
		set := make(map[string]bool, len(category.Skills))
		for _, skill := range category.Skills {
			set[skill] = true
			allSkills[skill] = true
		}
		categorySets[i] = set
	}

	return &skillExtractorService{
		tagger:       tagger,
		allSkills:    allSkills,
		categorySets: categorySets,
	}
}

var whitespaceRe = regexp.MustCompile(`\s+`)

func normalizeText(text string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), " ")
}

// ExtractSkills returns the deduplicated, lexicographically sorted skills
// found in the text via vocabulary matching and POS-based extraction.
func (s *skillExtractorService) ExtractSkills(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return []string{}, nil
	}

	normalized := normalizeText(text)

	extracted := make(map[string]bool)

	// Vocabulary matching: whole word, or the space-removed form as a
	// substring. The substring check is intentionally loose; it trades
	// false positives for recall.
	words := make(map[string]bool)
	for _, word := range strings.Fields(normalized) {
		words[word] = true
	}
	for skill := range s.allSkills {
		if words[skill] || strings.Contains(normalized, strings.ReplaceAll(skill, " ", "")) {
			extracted[skill] = true
		}
	}

	// POS-based extraction of noun candidates and compound phrases.
	tokens, err := s.tagger.Tag(normalized)
	if err != nil {
		return nil, fmt.Errorf("skill extraction failed: %w", err)
	}

	for _, token := range tokens {
		if !isNounPOS(token.POS) || len(token.Text) <= 2 {
			continue
		}
		if stopWords[token.Text] || posExclusions[token.Text] {
			continue
		}

		if token.Dep == depCompound && token.Head >= 0 && token.Head < len(tokens) && isNounPOS(tokens[token.Head].POS) {
			phrase := strings.ToLower(token.Text + " " + tokens[token.Head].Text)
			if s.allSkills[phrase] || len(strings.Fields(phrase)) > 1 {
				extracted[phrase] = true
			}
		} else {
			extracted[strings.ToLower(token.Text)] = true
		}
	}

	// Final filter pass over all candidates.
	skills := make([]string, 0, len(extracted))
	for skill := range extracted {
		if len(skill) > 2 && !skillStopList[skill] {
			skills = append(skills, skill)
		}
	}

	sort.Strings(skills)
	return skills, nil
}

// SkillsGap splits the two skill lists into matching, missing, and extra
// skills from the resume's point of view.
func (s *skillExtractorService) SkillsGap(resumeSkills, jobSkills []string) *SkillsGap {
	resumeSet := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		resumeSet[skill] = true
	}
	jobSet := make(map[string]bool, len(jobSkills))
	for _, skill := range jobSkills {
		jobSet[skill] = true
	}

	gap := &SkillsGap{
		Matching: []string{},
		Missing:  []string{},
		Extra:    []string{},
	}

	for skill := range resumeSet {
		if jobSet[skill] {
			gap.Matching = append(gap.Matching, skill)
		} else {
			gap.Extra = append(gap.Extra, skill)
		}
	}
	for skill := range jobSet {
		if !resumeSet[skill] {
			gap.Missing = append(gap.Missing, skill)
		}
	}

	sort.Strings(gap.Matching)
	sort.Strings(gap.Missing)
	sort.Strings(gap.Extra)

	return gap
}

// CategorizeSkills assigns each skill to the first matching category, in the
// declared category order. Skills matching no category are left out; empty
// categories are omitted.
func (s *skillExtractorService) CategorizeSkills(skills []string) map[string][]string {
	categorized := make(map[string][]string)

	for _, skill := range skills {
		for i, category := range skillVocabulary {
			if s.categorySets[i][skill] {
				categorized[category.Name] = append(categorized[category.Name], skill)
				break
			}
		}
	}

	return categorized
}
