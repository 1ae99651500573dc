package services

// SkillCategory is one named bucket of the skill vocabulary. Categorization
// assigns each skill to the first category whose set contains it, so the
// declared order here is part of the contract.
type SkillCategory struct {
	Name   string
	Skills []string
}

var skillVocabulary = []SkillCategory{
	{
		Name:   "programming languages",
		Skills: []string{"python", "java", "javascript", "c++", "c#", "ruby", "php", "go", "rust", "swift", "kotlin"},
	},
	{
		Name:   "frameworks",
		Skills: []string{"django", "flask", "react", "angular", "vue", "spring", "hibernate", "tensorflow", "pytorch", "scikit-learn"},
	},
	{
		Name:   "databases",
		Skills: []string{"mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle", "sql server"},
	},
	{
		Name:   "tools",
		Skills: []string{"git", "docker", "kubernetes", "jenkins", "aws", "azure", "gcp", "linux", "windows"},
	},
	{
		Name:   "soft skills",
		Skills: []string{"communication", "leadership", "teamwork", "problem solving", "analytical thinking"},
	},
	{
		Name:   "methodologies",
		Skills: []string{"agile", "scrum", "kanban", "waterfall", "devops", "ci/cd"},
	},
}

// Tokens skipped during POS-based candidate extraction.
var posExclusions = map[string]bool{
	"experience": true,
	"skills":     true,
	"knowledge":  true,
	"ability":    true,
	"years":      true,
}

// Candidates dropped by the final filter pass.
var skillStopList = map[string]bool{
	"work":    true,
	"team":    true,
	"project": true,
	"company": true,
	"client":  true,
	"user":    true,
	"system":  true,
	"data":    true,
	"time":    true,
	"process": true,
}

// Common English stop words, used to filter POS candidates.
var stopWords = map[string]bool{
	"a": true, "about": true, "above": true, "after": true, "again": true,
	"against": true, "all": true, "am": true, "an": true, "and": true,
	"any": true, "are": true, "as": true, "at": true, "be": true,
	"because": true, "been": true, "before": true, "being": true, "below": true,
	"between": true, "both": true, "but": true, "by": true, "can": true,
	"did": true, "do": true, "does": true, "doing": true, "down": true,
	"during": true, "each": true, "few": true, "for": true, "from": true,
	"further": true, "had": true, "has": true, "have": true, "having": true,
	"he": true, "her": true, "here": true, "hers": true, "him": true,
	"his": true, "how": true, "i": true, "if": true, "in": true,
	"into": true, "is": true, "it": true, "its": true, "just": true,
	"me": true, "more": true, "most": true, "my": true, "no": true,
	"nor": true, "not": true, "now": true, "of": true, "off": true,
	"on": true, "once": true, "only": true, "or": true, "other": true,
	"our": true, "ours": true, "out": true, "over": true, "own": true,
	"same": true, "she": true, "should": true, "so": true, "some": true,
	"such": true, "than": true, "that": true, "the": true, "their": true,
	"theirs": true, "them": true, "then": true, "there": true, "these": true,
	"they": true, "this": true, "those": true, "through": true, "to": true,
	"too": true, "under": true, "until": true, "up": true, "very": true,
	"was": true, "we": true, "were": true, "what": true, "when": true,
	"where": true, "which": true, "while": true, "who": true, "whom": true,
	"why": true, "will": true, "with": true, "you": true, "your": true,
	"yours": true,
}
