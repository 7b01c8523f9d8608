package usecase

import (
	"fmt"
	"strings"

	"github.com/mayankdk/portfolio-assistant/internal/core/domain"
)

// BuildCorpus denormalizes the fact store into one flat list of section
// tagged text chunks. The field labels ("Degree:", "Role:", ...) are
// part of the contract: the grounding gate checks generated answers
// against this exact text.
func BuildCorpus(f *domain.Facts) []domain.DocumentChunk {
	var chunks []domain.DocumentChunk
	add := func(section domain.Section, content string) {
		chunks = append(chunks, domain.DocumentChunk{
			Section: section,
			Content: strings.TrimSpace(content),
		})
	}

	add(domain.SectionProfile, profileChunkContent(f.Profile))

	for _, exp := range f.Experience {
		add(domain.SectionExperience, fmt.Sprintf(
			"Role: %s\nCompany: %s\nPeriod: %s\nDescription: %s\nAchievements: %s\nTechnologies: %s",
			exp.Role, exp.Company, exp.Period, exp.Description,
			strings.Join(exp.Achievements, ", "),
			strings.Join(exp.Technologies, ", "),
		))
	}

	for _, edu := range f.Education {
		add(domain.SectionEducation, fmt.Sprintf(
			"Degree: %s\nInstitution: %s\nYears: %s",
			edu.Degree, edu.Institution, edu.Years,
		))
	}

	for _, cert := range f.Certifications {
		add(domain.SectionCertifications, "Certification: "+cert)
	}

	for _, award := range f.Awards {
		add(domain.SectionAwards, fmt.Sprintf(
			"Award Title: %s\nDescription: %s",
			award.Title, award.Description,
		))
	}

	add(domain.SectionSkills, fmt.Sprintf(
		"AI & ML: %s\nDevelopment: %s\nBackend & Databases: %s\nSoft Skills: %s",
		strings.Join(f.Skills.AIML, ", "),
		strings.Join(f.Skills.Development, ", "),
		strings.Join(f.Skills.BackendDatabase, ", "),
		strings.Join(f.Skills.SoftSkills, ", "),
	))

	for _, proj := range f.Projects {
		add(domain.SectionProjects, fmt.Sprintf(
			"Project Name: %s\nDescription: %s\nFeatures: %s\nTechnologies: %s\nRole: %s\nTimeline: %s",
			proj.Name, proj.Description,
			strings.Join(proj.Features, ", "),
			strings.Join(proj.Technologies, ", "),
			proj.Role, proj.Timeline,
		))
	}

	return chunks
}

// profileChunkContent is shared with ExtractProfile so the structured
// and retrieved read paths render identical profile text.
func profileChunkContent(p domain.Profile) string {
	return strings.TrimSpace(fmt.Sprintf(
		"Name: %s\nTitle: %s\nLocation: %s\nBio: %s\nAvailability: %s\nFocus Areas: %s\nLanguages Spoken: %s\nInterests: %s",
		p.Name, p.Title, p.Location, p.Bio, p.Availability,
		strings.Join(p.Focus, ", "),
		strings.Join(p.Languages, ", "),
		strings.Join(p.Interests, ", "),
	))
}

// DefaultContextChunk is the retrieval fallback when similarity search
// is unavailable or returns nothing.
func DefaultContextChunk(f *domain.Facts) domain.DocumentChunk {
	return domain.DocumentChunk{
		Section: domain.SectionProfile,
		Content: profileChunkContent(f.Profile),
	}
}
