package usecase

import (
	"strings"

	"github.com/mayankdk/portfolio-assistant/internal/core/domain"
)

// The classifier is a strictly ordered cascade of (predicate, section)
// rules; the first matching rule wins. Keyword sets overlap on purpose
// (e.g. "background" appears in the combination rule, the comprehensive
// bucket and the education bucket), so the order below is load-bearing
// product policy and is pinned by tests. Later rules shadowed by earlier
// ones stay in place: removing one would silently change precedence for
// untested query shapes.
type classifierRule struct {
	name    string
	match   func(q string) bool
	section domain.Section
}

var subjectMarkers = []string{"mayank", "kulkarni", "his", " he ", " him"}

var spokenLanguageNames = []string{"german", "english", "hindi", "marathi", "french", "spanish"}

var speakContextWords = []string{"speak", "spoken", "talk", "communicate", "know", "proficiency"}

var programmingContextWords = []string{"programming", "coding", "code", "develop"}

var programmingLanguageNames = []string{
	"python", "javascript", "java", "c++", "c#", "php", "ruby", "go", "rust", "html", "css", "sql",
}

var relationalMarkers = []string{
	"connect", "relate", "relationship", "impact", "influence", "how does", "how do",
}

var combinationSectionKeywords = []string{
	"education", "experience", "work", "study", "project", "skill",
	"background", "career", "achievement",
}

var classifierCascade = []classifierRule{
	{
		name: "generic-knowledge",
		match: func(q string) bool {
			if strings.Contains(q, "ai in general") {
				return true
			}
			if strings.Contains(q, "what is ai") && !mentionsSubject(q) {
				return true
			}
			return strings.Contains(q, "who won") && !mentionsSubject(q)
		},
		section: domain.SectionOutOfContext,
	},
	{
		name: "multi-section",
		match: func(q string) bool {
			if !containsAny(q, " and ", "both", "also") {
				return false
			}
			return countDistinct(q, combinationSectionKeywords) >= 2
		},
		section: domain.SectionComprehensive,
	},
	{
		name: "synthesis",
		match: func(q string) bool {
			return containsAny(q, relationalMarkers...) && mentionsSubject(q)
		},
		section: domain.SectionSynthesis,
	},
	{
		name: "relational-without-subject",
		match: func(q string) bool {
			return containsAny(q, relationalMarkers...)
		},
		section: domain.SectionOutOfContext,
	},
	{
		name: "credentials",
		match: func(q string) bool {
			return containsAny(q, "credential", "qualification", "background")
		},
		section: domain.SectionComprehensive,
	},
	{
		name: "spoken-language",
		match: func(q string) bool {
			return containsAny(q, spokenLanguageNames...) &&
				(containsAny(q, speakContextWords...) || strings.Contains(q, "language"))
		},
		section: domain.SectionProfile,
	},
	{
		name: "programming",
		match: func(q string) bool {
			if containsAny(q, "programming", "coding") || containsWord(q, "code") {
				return true
			}
			return containsAnyWord(q, programmingLanguageNames...)
		},
		section: domain.SectionSkills,
	},
	{
		name: "language-speak-context",
		match: func(q string) bool {
			return strings.Contains(q, "language") && containsAny(q, speakContextWords...)
		},
		section: domain.SectionProfile,
	},
	{
		name: "language-programming-context",
		match: func(q string) bool {
			return strings.Contains(q, "language") && containsAny(q, programmingContextWords...)
		},
		section: domain.SectionSkills,
	},
	{
		name: "what-does-subject-do",
		match: func(q string) bool {
			return strings.Contains(q, "what does") &&
				containsAny(q, " do", "work as", "job")
		},
		section: domain.SectionProfile,
	},
	{
		name: "availability",
		match: func(q string) bool {
			return containsAny(q, "available", "hire", "contact", "where", "location", "interests")
		},
		section: domain.SectionProfile,
	},
	{
		name: "projects",
		match: func(q string) bool {
			return containsAny(q, "project", "built", "developed")
		},
		section: domain.SectionProjects,
	},
	{
		name: "education",
		match: func(q string) bool {
			return containsAny(q, "education", "degree", "college", "school",
				"study", "academic", "background", "student", "learn")
		},
		section: domain.SectionEducation,
	},
	{
		name: "experience",
		match: func(q string) bool {
			return containsAny(q, "experience", "work", "intern", "job",
				"role", "position", "company", "employed")
		},
		section: domain.SectionExperience,
	},
	{
		name: "skills",
		match: func(q string) bool {
			return containsAny(q, "skill", "technical", "programming",
				"technology", "expertise", "proficient")
		},
		section: domain.SectionSkills,
	},
	{
		name: "awards",
		match: func(q string) bool {
			return containsAny(q, "award", "achievement", "prize", "winner",
				"recognition", "honor")
		},
		section: domain.SectionAwards,
	},
	{
		name: "certifications",
		match: func(q string) bool {
			return containsAny(q, "certification", "certificate", "certified")
		},
		section: domain.SectionCertifications,
	},
	{
		name: "profile",
		match: func(q string) bool {
			return containsAny(q, "profile", "about", "bio", "who",
				"introduce", "background", "what does")
		},
		section: domain.SectionProfile,
	},
}

// Classify maps a raw query to its section. Pure function of the
// lowercased query; no rule match yields SectionUnclassified, which
// routes to the generative fallback.
func Classify(query string) domain.Section {
	q := normalizeQuery(query)
	for _, rule := range classifierCascade {
		if rule.match(q) {
			return rule.section
		}
	}
	return domain.SectionUnclassified
}

// normalizeQuery lowercases and pads the query so that word-edge markers
// such as " he " match at the string boundaries too.
func normalizeQuery(query string) string {
	return " " + strings.ToLower(strings.TrimSpace(query)) + " "
}

func mentionsSubject(q string) bool {
	return containsAny(q, subjectMarkers...)
}

func containsAny(q string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(q, term) {
			return true
		}
	}
	return false
}

func countDistinct(q string, terms []string) int {
	count := 0
	for _, term := range terms {
		if strings.Contains(q, term) {
			count++
		}
	}
	return count
}

// containsWord matches term only at word boundaries, so short language
// names like "go" or "c#" do not fire inside unrelated words.
func containsWord(q, term string) bool {
	for start := 0; ; {
		idx := strings.Index(q[start:], term)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(term)
		beforeOK := idx == 0 || isWordBreak(q[idx-1])
		afterOK := end == len(q) || isWordBreak(q[end])
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
		if start >= len(q) {
			return false
		}
	}
}

func containsAnyWord(q string, terms ...string) bool {
	for _, term := range terms {
		if containsWord(q, term) {
			return true
		}
	}
	return false
}

func isWordBreak(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return false
	case b >= '0' && b <= '9':
		return false
	default:
		return true
	}
}
