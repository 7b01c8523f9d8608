package usecase

import (
	"strings"

	"github.com/mayankdk/portfolio-assistant/internal/core/domain"
)

// ExtractComprehensive composes a credentials overview: education,
// certifications, the current role (detected by the literal "Present"
// in a stored period) and a one-line expertise summary. Sub-sections
// that would only produce their own sentinel are omitted; the blanket
// sentinel is returned only when every part is empty.
func ExtractComprehensive(f *domain.Facts) string {
	var parts []string

	if education := ExtractEducation(f); strings.Contains(education, "Education:") {
		parts = append(parts, education)
	}
	if certifications := ExtractCertifications(f); strings.Contains(certifications, "Certifications:") {
		parts = append(parts, certifications)
	}
	if role := currentRole(f); role != "" {
		parts = append(parts, "Current Role: "+role)
	}
	if expertise := keyExpertise(f); expertise != "" {
		parts = append(parts, "Key Expertise: "+expertise)
	}

	if len(parts) == 0 {
		return "Credential information is not available in Mayank's portfolio."
	}
	return strings.Join(parts, "\n\n")
}

func currentRole(f *domain.Facts) string {
	for _, exp := range f.Experience {
		if strings.Contains(exp.Period, "Present") {
			return stripRecordTag(exp.Role)
		}
	}
	return ""
}

// keyExpertise summarizes the skill buckets into the three fixed
// categories used by the credentials overview; soft skills are not a
// credential and are left out.
func keyExpertise(f *domain.Facts) string {
	var categories []string
	if len(f.Skills.AIML) > 0 {
		categories = append(categories, "AI/ML technologies")
	}
	if len(f.Skills.Development) > 0 {
		categories = append(categories, "Full-stack development")
	}
	if len(f.Skills.BackendDatabase) > 0 {
		categories = append(categories, "Backend systems & databases")
	}
	return strings.Join(categories, ", ")
}
