package usecase

import (
	"errors"
	"strings"
)

var errEmptyQuestion = errors.New("question is empty")

// outOfContextTopics are subjects this service will never answer, no
// matter what the retriever finds.
var outOfContextTopics = []string{
	"weather", "cricket", "football", "sports", "movie", "music",
	"news", "politics", "stock", "market", "recipe", "cooking",
	"travel", "holiday", "health", "medical", "doctor",
	"physics", "chemistry", "biology", "math", "history",
	"world cup", "tournament", "match", "game", "player",
	"president", "prime minister", "government", "election",
	"religion", "philosophy",
}

// generalKnowledgeTerms whitelist "what is X" questions that are still
// about the portfolio's own subject matter.
var generalKnowledgeTerms = []string{
	"ai", "ml", "machine learning", "artificial intelligence",
	"rag", "llm", "vision transformer", "phishing",
	"data science", "computer engineering", "diploma", "btech",
}

var tellMeAboutSections = []string{
	"mayank", "his", "education", "experience", "projects",
	"skills", "background", "work", "portfolio", "certifications",
	"awards", "languages", "contact", "email",
}

// isOutOfContext applies the full heuristic set for rejecting
// off-domain queries. Expects a normalized (lowercased, padded) query.
func isOutOfContext(q string) bool {
	if containsAny(q, outOfContextTopics...) {
		return true
	}

	trimmed := strings.TrimSpace(q)
	if topic, ok := strings.CutPrefix(trimmed, "who is "); ok {
		if !containsAny(topic, "mayank", "kulkarni") {
			return true
		}
	}
	if topic, ok := strings.CutPrefix(trimmed, "what is "); ok && !mentionsSubject(q) {
		if !containsAny(topic, generalKnowledgeTerms...) {
			return true
		}
	}
	if topic, ok := strings.CutPrefix(trimmed, "tell me about "); ok {
		if !containsAny(topic, tellMeAboutSections...) {
			return true
		}
	}
	return false
}

// isGenericAIQuery catches "AI in general" questions that slipped past
// the cascade; answered only when the subject himself is referenced.
func isGenericAIQuery(q string) bool {
	if strings.Contains(q, "ai in general") {
		return true
	}
	return strings.Contains(q, "what is ai") && !mentionsSubject(q)
}
