// Package taxonomy holds the fixed lookup tables the matchers score against:
// skill synonyms, skill categories, industry keywords, degree and seniority
// scales. Tables are plain data so the taxonomy can be extended without
// touching matcher control flow; the Default tables are built once and must
// not be mutated at runtime — they are shared across concurrent match calls.
package taxonomy

import "strings"

// Taxonomy bundles the lookup tables used by the match scoring engine.
type Taxonomy struct {
	// Synonyms maps a canonical skill name to its accepted variants.
	// Matching treats the relation as symmetric: canonical↔variant and
	// variant↔variant within one entry all count as the same skill.
	Synonyms map[string][]string

	// Category keyword lists used for score bonuses. A matched skill whose
	// lowercased name contains one of these keywords earns the category bonus.
	ProgrammingLanguages []string
	Frameworks           []string
	CloudTechnologies    []string

	// Industries maps an industry label to the keywords that signal it.
	Industries map[string][]string

	// DegreeScores is the ordinal education scale.
	DegreeScores map[string]int
	// DegreeHierarchy lists degree levels from highest to lowest.
	DegreeHierarchy []string

	// SeniorityRank is the 7-point ordinal seniority scale.
	SeniorityRank map[string]int
}

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	return &Taxonomy{
		Synonyms: map[string][]string{
			"javascript": {"js", "node.js", "nodejs"},
			"python":     {"py"},
			"react":      {"reactjs", "react.js"},
			"angular":    {"angularjs"},
			"vue":        {"vuejs", "vue.js"},
			"aws":        {"amazon web services"},
			"gcp":        {"google cloud platform"},
			"azure":      {"microsoft azure"},
			"docker":     {"containerization"},
			"kubernetes": {"k8s"},
			"postgresql": {"postgres"},
			"mongodb":    {"mongo"},
		},
		ProgrammingLanguages: []string{"python", "java", "javascript", "c++", "c#"},
		Frameworks:           []string{"react", "angular", "vue", "django", "spring"},
		CloudTechnologies:    []string{"aws", "azure", "gcp", "docker", "kubernetes"},
		Industries: map[string][]string{
			"fintech":    {"finance", "banking", "fintech", "payment", "trading"},
			"healthcare": {"healthcare", "medical", "hospital", "pharma"},
			"ecommerce":  {"ecommerce", "retail", "shopping", "marketplace"},
			"saas":       {"saas", "software", "platform", "cloud"},
			"gaming":     {"gaming", "game", "entertainment"},
			"education":  {"education", "learning", "university", "school"},
		},
		DegreeScores: map[string]int{
			"high_school": 20,
			"associate":   40,
			"bachelor":    70,
			"master":      90,
			"phd":         100,
		},
		DegreeHierarchy: []string{"phd", "master", "bachelor", "associate", "high_school"},
		SeniorityRank: map[string]int{
			"entry":     0,
			"junior":    1,
			"mid":       2,
			"senior":    3,
			"lead":      4,
			"principal": 5,
			"executive": 6,
		},
	}
}

// SimilarSkills reports whether two lowercased skill names refer to the same
// skill through the synonym table.
func (t *Taxonomy) SimilarSkills(a, b string) bool {
	for canonical, variants := range t.Synonyms {
		aIn := a == canonical || contains(variants, a)
		bIn := b == canonical || contains(variants, b)
		if aIn && bIn {
			return true
		}
	}
	return false
}

// SkillBonus returns the score bonus for one matched skill. A skill earns at
// most one bonus, checked in order: programming language (+5), framework (+3),
// cloud technology (+4).
func (t *Taxonomy) SkillBonus(skill string) int {
	lower := strings.ToLower(skill)
	if containsAny(lower, t.ProgrammingLanguages) {
		return 5
	}
	if containsAny(lower, t.Frameworks) {
		return 3
	}
	if containsAny(lower, t.CloudTechnologies) {
		return 4
	}
	return 0
}

// IndustriesIn returns the industry labels whose keywords appear in text.
// The text must already be lowercased.
func (t *Taxonomy) IndustriesIn(text string) []string {
	var found []string
	for industry, keywords := range t.Industries {
		if containsAny(text, keywords) {
			found = append(found, industry)
		}
	}
	return found
}

// DegreeScore returns the ordinal score of a degree level, or fallback when
// the level is unknown.
func (t *Taxonomy) DegreeScore(level string, fallback int) int {
	if score, ok := t.DegreeScores[level]; ok {
		return score
	}
	return fallback
}

// SeniorityDistance returns the absolute ordinal distance between two
// seniority levels. Unknown levels rank as mid.
func (t *Taxonomy) SeniorityDistance(a, b string) int {
	const midRank = 2
	ra, ok := t.SeniorityRank[a]
	if !ok {
		ra = midRank
	}
	rb, ok := t.SeniorityRank[b]
	if !ok {
		rb = midRank
	}
	if ra > rb {
		return ra - rb
	}
	return rb - ra
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// containsAny reports whether any keyword appears as a substring of text.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
