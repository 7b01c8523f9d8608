package usecase

import (
	"strings"

	"github.com/mayankdk/portfolio-assistant/internal/core/domain"
)

// Synthesize handles the fixed set of cross-section narrative templates.
// It returns ok=false when the query carried a synthesis tag but none of
// the templates apply, signalling the orchestrator to fall through to
// the generative path. The boolean keeps "no template" distinct from a
// legitimate empty answer.
func Synthesize(f *domain.Facts, query string) (string, bool) {
	q := normalizeQuery(query)

	switch {
	case containsAny(q, " ai ", "ai ", "machine learning", "artificial intelligence") && containsAny(q, "project", "skill"):
		return synthesizeAIWork(f), true
	case strings.Contains(q, "education") && strings.Contains(q, "experience"):
		return synthesizeEducationExperience(f), true
	case strings.Contains(q, "skill") && strings.Contains(q, "project"):
		return synthesizeSkillsProjects(f), true
	case strings.Contains(q, "background"):
		return synthesizeBackground(f), true
	}
	return "", false
}

func synthesizeAIWork(f *domain.Facts) string {
	var b strings.Builder
	b.WriteString("Mayank's AI and machine learning skills show up directly in his project work.")
	if len(f.Skills.AIML) > 0 {
		b.WriteString(" His AI & ML toolkit includes ")
		b.WriteString(strings.Join(f.Skills.AIML, ", "))
		b.WriteString(".")
	}
	if names := projectNames(f); len(names) > 0 {
		b.WriteString(" He has applied these skills in projects such as ")
		b.WriteString(strings.Join(names, ", "))
		b.WriteString(".")
	}
	b.WriteString("\n\n")
	b.WriteString(ExtractProjects(f, ""))
	return b.String()
}

func synthesizeEducationExperience(f *domain.Facts) string {
	var b strings.Builder
	b.WriteString("Mayank's education and work experience build on each other: his academic grounding feeds directly into the roles he has taken on.\n\n")
	b.WriteString(ExtractEducation(f))
	b.WriteString("\n\n")
	b.WriteString(ExtractExperience(f))
	return b.String()
}

func synthesizeSkillsProjects(f *domain.Facts) string {
	var b strings.Builder
	b.WriteString("Mayank's technical skills map onto his projects: each project below exercises tools from his skill set.\n\n")
	b.WriteString(ExtractSkills(f))
	b.WriteString("\n\n")
	b.WriteString(ExtractProjects(f, ""))
	return b.String()
}

func synthesizeBackground(f *domain.Facts) string {
	var b strings.Builder
	if f.Profile.Bio != "" {
		b.WriteString(f.Profile.Bio)
		b.WriteString("\n\n")
	}
	b.WriteString(ExtractComprehensive(f))
	return b.String()
}

func projectNames(f *domain.Facts) []string {
	names := make([]string, 0, len(f.Projects))
	for _, proj := range f.Projects {
		names = append(names, stripRecordTag(proj.Name))
	}
	return names
}
