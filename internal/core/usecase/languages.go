package usecase

import (
	"strings"

	"github.com/mayankdk/portfolio-assistant/internal/core/domain"
)

// Proficiency answers are literal constants. They deliberately bypass
// the generative path so no later component can ever claim a level
// ("fluent", "native") inconsistent with the stored one.
const (
	germanProficiencyAnswer  = "Mayank's German proficiency: Intermediate (A2 certified)"
	germanFluencyNegation    = "No, Mayank's German proficiency is Intermediate (A2 certified), not fluent or native."
	englishProficiencyAnswer = "Mayank's English proficiency: Fluent"
	hindiProficiencyAnswer   = "Mayank's Hindi proficiency: Native"
	marathiProficiencyAnswer = "Mayank's Marathi proficiency: Native"
)

// ExtractLanguages serves spoken-language queries regardless of which
// section the router picked. A query naming a specific language gets its
// fixed proficiency sentence; anything else gets the stored list.
func ExtractLanguages(f *domain.Facts, query string) string {
	if len(f.Profile.Languages) == 0 {
		return sectionSentinel("Language")
	}

	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "german"):
		if containsAny(q, "fluent", "native") {
			return germanFluencyNegation
		}
		return germanProficiencyAnswer
	case strings.Contains(q, "english"):
		return englishProficiencyAnswer
	case strings.Contains(q, "hindi"):
		return hindiProficiencyAnswer
	case strings.Contains(q, "marathi"):
		return marathiProficiencyAnswer
	}

	return "Mayank speaks: " + strings.Join(f.Profile.Languages, ", ")
}

// isSpokenLanguageQuery reports whether the query should short-circuit
// to the language extractor: it mentions a spoken-language term and
// carries no programming context. Evaluated even when the router
// produced a different section tag.
func isSpokenLanguageQuery(q string) bool {
	if !containsAny(q, "speak", "language", "german", "english", "hindi", "marathi", "proficiency") {
		return false
	}
	return !containsAny(q, "programming", "coding") && !containsWord(q, "code")
}
