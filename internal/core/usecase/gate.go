package usecase

import (
	"strings"

	"github.com/mayankdk/portfolio-assistant/internal/core/domain"
)

// Gate rejection reasons, exported through Answer.GateOutcome for
// metrics and the audit log.
const (
	GateRejectInstitution = "forbidden-institution"
	GateRejectLanguage    = "language-proficiency"
	GateRejectUngrounded  = "ungrounded-short-answer"
	GateRejectCredential  = "unsupported-credential"
	GateRejectCompletion  = "completion-claim"
)

// forbiddenInstitutionTerms are known hallucination targets for this
// fact store: the generative model keeps inventing these credentials.
// Any of them appearing in an answer but not in the retrieved context is
// an automatic rejection.
var forbiddenInstitutionTerms = []string{
	"indian institute of technology", "iit", "iit kanpur",
	"university of mumbai", "mumbai university",
	"bachelor's degree", "bachelor of science", "b.sc",
	"master's degree", "master of", "m.sc", "m.tech",
}

var completionClaimPhrases = []string{
	"completed in", "graduated in", "finished in", "received his degree in",
}

// shortAnswerStopwords are skipped by the token-containment check.
var shortAnswerStopwords = map[string]struct{}{
	"this": {}, "that": {}, "these": {}, "those": {},
	"mayank": {}, "his": {}, "her": {},
	"what": {}, "where": {}, "when": {},
	"yes": {}, "no": {},
}

// EnforceGrounding validates a generated answer against the retrieved
// context and substitutes a refusal when validation fails. All checks
// are literal substring containment, intentionally stricter than
// semantic entailment; do not loosen them. The second return value is
// the rejection reason, empty when the answer passed.
func EnforceGrounding(f *domain.Facts, answer, context string) (string, string) {
	answerLower := strings.ToLower(answer)
	contextLower := strings.ToLower(context)

	// A refusal is always safe to release as-is.
	if strings.Contains(answer, CanonicalRefusal) {
		return answer, ""
	}

	for _, term := range forbiddenInstitutionTerms {
		if strings.Contains(answerLower, term) && !strings.Contains(contextLower, term) {
			fallback := CanonicalRefusal +
				" According to his portfolio, his credentials include:\n\n" +
				ExtractComprehensive(f)
			return fallback, GateRejectInstitution
		}
	}

	if strings.Contains(answerLower, "german") && containsAny(answerLower, "fluent", "native") {
		if !strings.Contains(contextLower, "intermediate") && !strings.Contains(contextLower, "a2") {
			return CanonicalRefusal, GateRejectLanguage
		}
	}

	// Short, terse answers must be literally contained in the context:
	// every content word has to appear there.
	if len(answer) < 100 {
		words := strings.Fields(answerLower)
		if len(words) < 10 {
			for _, word := range words {
				term := strings.Trim(word, ".,!?;:'\"()")
				if len(term) <= 3 {
					continue
				}
				if _, skip := shortAnswerStopwords[term]; skip {
					continue
				}
				if !strings.Contains(contextLower, term) {
					return CanonicalRefusal, GateRejectUngrounded
				}
			}
			return strings.TrimSpace(answer), ""
		}
	}

	if containsAny(answerLower, "bachelor of science", "b.sc") && !strings.Contains(contextLower, "bachelor of science") {
		return CanonicalRefusal, GateRejectCredential
	}
	if strings.Contains(answerLower, "bachelor of technology") && !strings.Contains(contextLower, "btech") {
		return CanonicalRefusal, GateRejectCredential
	}

	// Completion dates are a known hallucination vector; never trusted
	// from the generative path even when grounded.
	for _, phrase := range completionClaimPhrases {
		if strings.Contains(answerLower, phrase) {
			if containsAny(answerLower, "education", "degree") {
				return CanonicalRefusal, GateRejectCompletion
			}
		}
	}

	return strings.TrimSpace(answer), ""
}

// hedgePhrases mark generic-authority answers that leak model knowledge
// instead of portfolio content.
var hedgePhrases = []string{
	"generally", "generally speaking", "typically", "in general",
	"as an ai", "as a language model", "i think", "i believe",
}

// forbiddenAnswerTopics mirror the off-domain topics the generator is
// told to refuse; their presence in an answer means the instruction
// failed.
var forbiddenAnswerTopics = []string{
	"weather", "forecast", "temperature", "°c", "°f",
	"cricket", "football", "sports", "world cup", "tournament",
	"news", "current events", "politics", "government",
}

// anchorTerms are weak evidence that a generated answer is on-topic.
var anchorTerms = []string{
	"mayank", "portfolio", "education", "experience", "project", "skill",
	"award", "certification", "language", "btech", "diploma", "intern",
	"developer", "machine learning", "phishguard", "yogar",
}

// IsValidGeneratedAnswer is the pre-check applied ahead of the grounding
// gate. The two are independent, stacked defenses; both must pass.
func IsValidGeneratedAnswer(answer, query string) bool {
	trimmed := strings.TrimSpace(answer)
	if len(trimmed) < 30 {
		return false
	}

	answerLower := strings.ToLower(trimmed)
	if strings.Contains(answer, CanonicalRefusal) {
		return true
	}
	if containsAny(answerLower, hedgePhrases...) {
		return false
	}
	if containsAny(answerLower, forbiddenAnswerTopics...) {
		return false
	}

	required := 1
	if containsAny(normalizeQuery(query), relationalMarkers...) {
		required = 2
	}
	return countDistinct(answerLower, anchorTerms) >= required
}
