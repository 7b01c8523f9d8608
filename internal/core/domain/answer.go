package domain

import "time"

// AnswerSource names the path that produced the final answer text.
type AnswerSource string

const (
	SourceExtractor  AnswerSource = "extractor"
	SourceSynthesis  AnswerSource = "synthesis"
	SourceGenerative AnswerSource = "generative"
	SourceRefusal    AnswerSource = "refusal"
)

// Gate outcomes recorded alongside generative answers. Deterministic
// paths never pass through the gate and report GateSkipped.
const (
	GateSkipped = "skipped"
	GatePassed  = "passed"
	// GateGenerationError marks answers where the generative call itself
	// failed before the gate could run.
	GateGenerationError = "generation-error"
)

type Answer struct {
	Text        string       `json:"answer"`
	Section     Section      `json:"section"`
	Source      AnswerSource `json:"source"`
	GateOutcome string       `json:"-"`

	// RetrievalFallback marks answers whose generative context degraded
	// to the default profile chunk.
	RetrievalFallback bool `json:"-"`
}

// AnswerRecord is the audit-log row for one served answer.
type AnswerRecord struct {
	ID          string
	Question    string
	Section     Section
	Source      AnswerSource
	GateOutcome string
	Answer      string
	CreatedAt   time.Time
}
