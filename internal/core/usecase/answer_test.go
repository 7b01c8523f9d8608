package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mayankdk/portfolio-assistant/internal/core/domain"
)

type retrieverFake struct {
	chunks []string
	err    error
	calls  int
}

func (f *retrieverFake) Search(_ context.Context, _ string, _ int) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.chunks, nil
}

type generatorFake struct {
	answer   string
	err      error
	calls    int
	contexts []string
}

func (f *generatorFake) GenerateGrounded(_ context.Context, _ string, contextChunks []string) (string, error) {
	f.calls++
	f.contexts = append(f.contexts, strings.Join(contextChunks, "\n\n"))
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

type auditLogFake struct {
	records []domain.AnswerRecord
}

func (f *auditLogFake) Record(_ context.Context, rec domain.AnswerRecord) error {
	f.records = append(f.records, rec)
	return nil
}

func newAnswerUC(retriever *retrieverFake, generator *generatorFake, log *auditLogFake) *AnswerUseCase {
	cfg := AnswerConfig{TopK: 3, FallbackComprehensive: true}
	if log == nil {
		return NewAnswerUseCase(testFacts(), retriever, generator, nil, cfg)
	}
	return NewAnswerUseCase(testFacts(), retriever, generator, log, cfg)
}

func TestAnswerProjectsEndToEnd(t *testing.T) {
	retriever := &retrieverFake{chunks: []string{"Project Name: PhishGuard AI"}}
	generator := &generatorFake{answer: "should never be used"}
	uc := newAnswerUC(retriever, generator, nil)

	answer, err := uc.Answer(context.Background(), "What projects has Mayank worked on?")
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if !strings.HasPrefix(answer.Text, "Mayank's Projects:") {
		t.Fatalf("expected project listing, got:\n%s", answer.Text)
	}
	if answer.Section != domain.SectionProjects || answer.Source != domain.SourceExtractor {
		t.Fatalf("unexpected routing: section=%s source=%s", answer.Section, answer.Source)
	}
	if generator.calls != 0 {
		t.Fatalf("hard-locked section must never reach the generator")
	}
}

func TestAnswerGermanFluencyShortCircuit(t *testing.T) {
	uc := newAnswerUC(&retrieverFake{}, &generatorFake{answer: "Mayank speaks fluent German"}, nil)

	answer, err := uc.Answer(context.Background(), "Does Mayank speak German fluently?")
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if answer.Text != germanFluencyNegation {
		t.Fatalf("expected exact negation sentence, got %q", answer.Text)
	}
}

func TestAnswerOutOfContextRefusals(t *testing.T) {
	for _, query := range []string{
		"What's the weather today?",
		"What is photosynthesis?",
		"Who won the cricket world cup?",
		"Tell me about AI in general",
	} {
		retriever := &retrieverFake{}
		generator := &generatorFake{answer: "leak"}
		uc := newAnswerUC(retriever, generator, nil)

		answer, err := uc.Answer(context.Background(), query)
		if err != nil {
			t.Fatalf("Answer(%q) error = %v", query, err)
		}
		if !strings.HasPrefix(answer.Text, CanonicalRefusal) {
			t.Errorf("query %q: expected canonical refusal, got %q", query, answer.Text)
		}
		if answer.Source != domain.SourceRefusal {
			t.Errorf("query %q: expected refusal source, got %s", query, answer.Source)
		}
		if generator.calls != 0 {
			t.Errorf("query %q: out-of-context must not reach the generator", query)
		}
	}
}

func TestAnswerInDomainEducationNotRefused(t *testing.T) {
	uc := newAnswerUC(&retrieverFake{}, &generatorFake{}, nil)

	answer, err := uc.Answer(context.Background(), "What is Mayank's education?")
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if strings.Contains(answer.Text, CanonicalRefusal) {
		t.Fatalf("in-domain education query must not be refused: %q", answer.Text)
	}
	if !strings.HasPrefix(answer.Text, "Mayank's Education:") {
		t.Fatalf("expected education listing, got %q", answer.Text)
	}
}

func TestAnswerPrecedenceComprehensive(t *testing.T) {
	uc := newAnswerUC(&retrieverFake{}, &generatorFake{}, nil)

	answer, err := uc.Answer(context.Background(), "Tell me about his education and experience")
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if answer.Section != domain.SectionComprehensive {
		t.Fatalf("combination query must route comprehensive, got %s", answer.Section)
	}
	if !strings.Contains(answer.Text, "Mayank's Education:") {
		t.Fatalf("comprehensive answer missing education:\n%s", answer.Text)
	}
}

func TestAnswerSynthesisTemplate(t *testing.T) {
	generator := &generatorFake{answer: "unused"}
	uc := newAnswerUC(&retrieverFake{}, generator, nil)

	answer, err := uc.Answer(context.Background(), "How does his education relate to his experience?")
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if answer.Source != domain.SourceSynthesis {
		t.Fatalf("expected synthesis source, got %s", answer.Source)
	}
	if !strings.Contains(answer.Text, "Mayank's Education:") || !strings.Contains(answer.Text, "Mayank's Work Experience:") {
		t.Fatalf("synthesis answer must interpolate both extractors:\n%s", answer.Text)
	}
	if generator.calls != 0 {
		t.Fatalf("matched template must not reach the generator")
	}
}

func TestAnswerGenerativePathGated(t *testing.T) {
	retriever := &retrieverFake{chunks: []string{"Name: Mayank D. Kulkarni\nTitle: AI & Full-Stack Developer"}}
	generator := &generatorFake{
		answer: "Mayank holds a Master's degree from IIT Kanpur and works as a senior consultant.",
	}
	uc := newAnswerUC(retriever, generator, nil)

	answer, err := uc.Answer(context.Background(), "Is Mayank a consultant?")
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if generator.calls != 1 {
		t.Fatalf("unclassified query must invoke the generator once, got %d", generator.calls)
	}
	if answer.Source != domain.SourceRefusal {
		t.Fatalf("fabricated credentials must be rejected, got source %s", answer.Source)
	}
	if strings.Contains(strings.ToLower(answer.Text), "iit") {
		t.Fatalf("gate output must not repeat the forbidden institution:\n%s", answer.Text)
	}
}

func TestAnswerGenerativePathPasses(t *testing.T) {
	retriever := &retrieverFake{chunks: []string{
		"Name: Mayank D. Kulkarni\nBio: AI developer focused on applied machine learning and computer vision tooling for industrial clients.",
	}}
	generator := &generatorFake{
		answer: "Mayank is an AI developer whose portfolio centers on applied machine learning and computer vision tooling for industrial clients.",
	}
	uc := newAnswerUC(retriever, generator, nil)

	answer, err := uc.Answer(context.Background(), "Summarize what kind of engineer Mayank is")
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if answer.Source != domain.SourceGenerative {
		t.Fatalf("expected generative answer, got source=%s gate=%s text=%q", answer.Source, answer.GateOutcome, answer.Text)
	}
	if answer.GateOutcome != domain.GatePassed {
		t.Fatalf("expected gate pass, got %s", answer.GateOutcome)
	}
	if answer.RetrievalFallback {
		t.Fatalf("retrieval succeeded, fallback must not be flagged")
	}
}

func TestAnswerGenerationErrorFallsBack(t *testing.T) {
	retriever := &retrieverFake{chunks: []string{"Name: Mayank D. Kulkarni"}}
	generator := &generatorFake{err: domain.WrapError(domain.ErrGenerationFailed, "complete", errors.New("upstream 503"))}
	uc := newAnswerUC(retriever, generator, nil)

	answer, err := uc.Answer(context.Background(), "Has Mayank mentored junior developers before?")
	if err != nil {
		t.Fatalf("generation failure must be absorbed, got error %v", err)
	}
	if !strings.HasPrefix(answer.Text, CanonicalRefusal) {
		t.Fatalf("expected refusal fallback, got %q", answer.Text)
	}
	if !strings.Contains(answer.Text, "his credentials include") {
		t.Fatalf("configured fallback should append credentials:\n%s", answer.Text)
	}
	if answer.GateOutcome != domain.GateGenerationError {
		t.Fatalf("unexpected gate outcome %q", answer.GateOutcome)
	}
}

func TestAnswerRetrievalFailureIsNotFatal(t *testing.T) {
	retriever := &retrieverFake{err: domain.WrapError(domain.ErrRetrievalUnavailable, "search", errors.New("index down"))}
	generator := &generatorFake{answer: CanonicalRefusal}
	uc := newAnswerUC(retriever, generator, nil)

	answer, err := uc.Answer(context.Background(), "Is Mayank left-handed?")
	if err != nil {
		t.Fatalf("retrieval failure must be absorbed, got %v", err)
	}
	if answer.Text == "" {
		t.Fatalf("caller must always receive a well-formed answer")
	}
	if !answer.RetrievalFallback {
		t.Fatalf("degrading to the default chunk must be flagged on the answer")
	}
}

func TestAnswerEmptyRetrievalUsesDefaultChunk(t *testing.T) {
	retriever := &retrieverFake{}
	generator := &generatorFake{answer: CanonicalRefusal}
	uc := newAnswerUC(retriever, generator, nil)

	answer, err := uc.Answer(context.Background(), "Does Mayank enjoy hiking?")
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if !answer.RetrievalFallback {
		t.Fatalf("empty retrieval must fall back to the default chunk")
	}
	if len(generator.contexts) != 1 || !strings.Contains(generator.contexts[0], "Name: Mayank D. Kulkarni") {
		t.Fatalf("generator must receive the profile chunk, got %v", generator.contexts)
	}
}

func TestAnswerEmptyQuestionRejected(t *testing.T) {
	uc := newAnswerUC(&retrieverFake{}, &generatorFake{}, nil)
	_, err := uc.Answer(context.Background(), "   ")
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAnswerAuditLogRecordsOutcome(t *testing.T) {
	log := &auditLogFake{}
	uc := newAnswerUC(&retrieverFake{}, &generatorFake{}, log)

	if _, err := uc.Answer(context.Background(), "What is Mayank's education?"); err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if len(log.records) != 1 {
		t.Fatalf("expected one audit record, got %d", len(log.records))
	}
	rec := log.records[0]
	if rec.Section != domain.SectionEducation || rec.Source != domain.SourceExtractor {
		t.Fatalf("unexpected audit record: %+v", rec)
	}
	if rec.ID == "" || rec.CreatedAt.IsZero() {
		t.Fatalf("audit record must carry id and timestamp: %+v", rec)
	}
}
