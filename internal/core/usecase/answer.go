package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mayankdk/portfolio-assistant/internal/core/domain"
	"github.com/mayankdk/portfolio-assistant/internal/core/ports"
)

type AnswerConfig struct {
	// TopK chunks retrieved as generative context.
	TopK int
	// FallbackComprehensive appends the credentials overview to the
	// refusal when the generative call itself fails.
	FallbackComprehensive bool
}

// AnswerUseCase sequences the whole pipeline: out-of-context
// short-circuits, retrieval, routing, the deterministic extractors, and
// the gated generative fallback. Every recoverable failure is absorbed
// here; callers always get a well-formed answer.
type AnswerUseCase struct {
	facts     *domain.Facts
	retriever ports.ContextRetriever
	generator ports.AnswerGenerator
	auditLog  ports.AnswerLog
	cfg       AnswerConfig
}

func NewAnswerUseCase(
	facts *domain.Facts,
	retriever ports.ContextRetriever,
	generator ports.AnswerGenerator,
	auditLog ports.AnswerLog,
	cfg AnswerConfig,
) *AnswerUseCase {
	if cfg.TopK <= 0 {
		cfg.TopK = 3
	}
	return &AnswerUseCase{
		facts:     facts,
		retriever: retriever,
		generator: generator,
		auditLog:  auditLog,
		cfg:       cfg,
	}
}

func (uc *AnswerUseCase) Answer(ctx context.Context, question string) (domain.Answer, error) {
	if strings.TrimSpace(question) == "" {
		return domain.Answer{}, domain.WrapError(domain.ErrInvalidInput, "answer", errEmptyQuestion)
	}

	answer := uc.resolve(ctx, question)
	uc.record(ctx, question, answer)
	return answer, nil
}

func (uc *AnswerUseCase) resolve(ctx context.Context, question string) domain.Answer {
	q := normalizeQuery(question)

	// Literal sports/news trivia is the most common probe; reject it
	// before spending anything on retrieval.
	if strings.Contains(q, "who won") && !mentionsSubject(q) {
		return refusalAnswer(domain.SectionOutOfContext, true)
	}
	if isOutOfContext(q) {
		return refusalAnswer(domain.SectionOutOfContext, true)
	}

	contextChunks, retrievalFellBack := uc.retrieveContext(ctx, question)
	answer := uc.route(ctx, question, q, contextChunks)
	answer.RetrievalFallback = retrievalFellBack
	return answer
}

func (uc *AnswerUseCase) route(ctx context.Context, question, q string, contextChunks []string) domain.Answer {
	section := Classify(question)

	// Redundant safety net: the cascade normally catches these, but a
	// later rule must never resurrect a generic AI question.
	if isGenericAIQuery(q) {
		return refusalAnswer(domain.SectionOutOfContext, true)
	}

	if section == domain.SectionOutOfContext {
		return refusalAnswer(domain.SectionOutOfContext, true)
	}

	if section == domain.SectionSynthesis {
		if text, ok := Synthesize(uc.facts, question); ok {
			return domain.Answer{
				Text:        text,
				Section:     section,
				Source:      domain.SourceSynthesis,
				GateOutcome: domain.GateSkipped,
			}
		}
		section = domain.SectionUnclassified
	}

	// The language hard-lock overrides whatever section the router
	// picked, so proficiency levels always come from stored constants.
	if isSpokenLanguageQuery(q) {
		return extractorAnswer(domain.SectionProfile, ExtractLanguages(uc.facts, question))
	}

	switch section {
	case domain.SectionEducation:
		return extractorAnswer(section, ExtractEducation(uc.facts))
	case domain.SectionExperience:
		return extractorAnswer(section, ExtractExperience(uc.facts))
	case domain.SectionProjects:
		return extractorAnswer(section, ExtractProjects(uc.facts, question))
	case domain.SectionSkills:
		return extractorAnswer(section, ExtractSkills(uc.facts))
	case domain.SectionAwards:
		return extractorAnswer(section, ExtractAwards(uc.facts))
	case domain.SectionCertifications:
		return extractorAnswer(section, ExtractCertifications(uc.facts))
	case domain.SectionComprehensive:
		return extractorAnswer(section, ExtractComprehensive(uc.facts))
	case domain.SectionProfile:
		if !mentionsSubject(q) {
			return refusalAnswer(domain.SectionProfile, true)
		}
		return extractorAnswer(section, ExtractProfile(uc.facts))
	}

	return uc.generateGated(ctx, question, contextChunks)
}

func (uc *AnswerUseCase) retrieveContext(ctx context.Context, question string) ([]string, bool) {
	chunks, err := uc.retriever.Search(ctx, question, uc.cfg.TopK)
	if err != nil || len(chunks) == 0 {
		// Retrieval is never fatal; the profile chunk keeps the
		// generative path grounded in something true.
		return []string{DefaultContextChunk(uc.facts).Content}, true
	}
	return chunks, false
}

func (uc *AnswerUseCase) generateGated(ctx context.Context, question string, contextChunks []string) domain.Answer {
	raw, err := uc.generator.GenerateGrounded(ctx, question, contextChunks)
	if err != nil {
		text := CanonicalRefusal
		if uc.cfg.FallbackComprehensive {
			if credentials := ExtractComprehensive(uc.facts); !strings.Contains(credentials, "not available") {
				text += " According to his portfolio, his credentials include:\n\n" + credentials
			}
		}
		return domain.Answer{
			Text:        text,
			Section:     domain.SectionUnclassified,
			Source:      domain.SourceRefusal,
			GateOutcome: domain.GateGenerationError,
		}
	}

	if !IsValidGeneratedAnswer(raw, question) {
		return domain.Answer{
			Text:        CanonicalRefusal,
			Section:     domain.SectionUnclassified,
			Source:      domain.SourceRefusal,
			GateOutcome: "precheck-rejected",
		}
	}

	text, reason := EnforceGrounding(uc.facts, raw, strings.Join(contextChunks, "\n\n"))
	if reason != "" {
		return domain.Answer{
			Text:        text,
			Section:     domain.SectionUnclassified,
			Source:      domain.SourceRefusal,
			GateOutcome: reason,
		}
	}
	return domain.Answer{
		Text:        text,
		Section:     domain.SectionUnclassified,
		Source:      domain.SourceGenerative,
		GateOutcome: domain.GatePassed,
	}
}

func (uc *AnswerUseCase) record(ctx context.Context, question string, answer domain.Answer) {
	if uc.auditLog == nil {
		return
	}
	// Best effort: auditing must never break answering.
	_ = uc.auditLog.Record(ctx, domain.AnswerRecord{
		ID:          uuid.NewString(),
		Question:    question,
		Section:     answer.Section,
		Source:      answer.Source,
		GateOutcome: answer.GateOutcome,
		Answer:      answer.Text,
		CreatedAt:   time.Now().UTC(),
	})
}

func extractorAnswer(section domain.Section, text string) domain.Answer {
	return domain.Answer{
		Text:        text,
		Section:     section,
		Source:      domain.SourceExtractor,
		GateOutcome: domain.GateSkipped,
	}
}

func refusalAnswer(section domain.Section, guidance bool) domain.Answer {
	text := CanonicalRefusal
	if guidance {
		text += RefusalGuidance
	}
	return domain.Answer{
		Text:        text,
		Section:     section,
		Source:      domain.SourceRefusal,
		GateOutcome: domain.GateSkipped,
	}
}
