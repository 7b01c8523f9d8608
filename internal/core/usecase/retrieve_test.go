package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/mayankdk/portfolio-assistant/internal/core/domain"
)

type embedderFake struct {
	vector []float32
	err    error
}

func (f *embedderFake) Embed(_ context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = f.vector
	}
	return out, nil
}

func (f *embedderFake) EmbedQuery(_ context.Context, _ string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.vector, nil
}

type vectorStoreFake struct {
	filtered []domain.RetrievedChunk
	broad    []domain.RetrievedChunk
	err      error
	searches []domain.SearchFilter
}

func (f *vectorStoreFake) IndexChunks(_ context.Context, _ []domain.DocumentChunk, _ [][]float32) error {
	return nil
}

func (f *vectorStoreFake) Reset(_ context.Context) error { return nil }

func (f *vectorStoreFake) Search(_ context.Context, _ []float32, _ int, filter domain.SearchFilter) ([]domain.RetrievedChunk, error) {
	f.searches = append(f.searches, filter)
	if f.err != nil {
		return nil, f.err
	}
	if filter.Section == "" {
		return f.broad, nil
	}
	return f.filtered, nil
}

func TestRetrieverFiltersBySection(t *testing.T) {
	store := &vectorStoreFake{
		filtered: []domain.RetrievedChunk{
			{Section: domain.SectionEducation, Content: "Degree: BTech", Score: 0.9},
			{Section: domain.SectionEducation, Content: "Degree: Diploma", Score: 0.8},
			{Section: domain.SectionEducation, Content: "Degree: Exchange", Score: 0.7},
		},
	}
	r := NewRetriever(&embedderFake{vector: []float32{1, 0}}, store)

	chunks, err := r.Search(context.Background(), "Tell me about Mayank's education", 3)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if len(store.searches) != 1 || store.searches[0].Section != domain.SectionEducation {
		t.Fatalf("expected one education-filtered search, got %+v", store.searches)
	}
}

func TestRetrieverWidensWhenFilteredSetShort(t *testing.T) {
	store := &vectorStoreFake{
		filtered: []domain.RetrievedChunk{
			{Section: domain.SectionProjects, Content: "Project Name: PhishGuard AI", Score: 0.9},
		},
		broad: []domain.RetrievedChunk{
			{Section: domain.SectionProjects, Content: "Project Name: PhishGuard AI", Score: 0.9},
			{Section: domain.SectionSkills, Content: "AI & ML: PyTorch", Score: 0.6},
			{Section: domain.SectionProfile, Content: "Name: Mayank D. Kulkarni", Score: 0.5},
		},
	}
	r := NewRetriever(&embedderFake{vector: []float32{1, 0}}, store)

	chunks, err := r.Search(context.Background(), "What projects has he built?", 3)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("expected widened result of 3, got %d: %v", len(chunks), chunks)
	}
	// The duplicate project chunk from the broad pass must be dropped.
	if chunks[0] != "Project Name: PhishGuard AI" || chunks[1] != "AI & ML: PyTorch" {
		t.Fatalf("unexpected chunk order: %v", chunks)
	}
	if len(store.searches) != 2 {
		t.Fatalf("expected filtered then widened search, got %d searches", len(store.searches))
	}
}

func TestRetrieverReturnsEmptyWhenNothingMatches(t *testing.T) {
	store := &vectorStoreFake{}
	r := NewRetriever(&embedderFake{vector: []float32{1, 0}}, store)

	chunks, err := r.Search(context.Background(), "Is Mayank left-handed?", 3)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(chunks) != 0 {
		t.Fatalf("expected empty result, got %v", chunks)
	}
}

func TestRetrieverEmbedFailure(t *testing.T) {
	r := NewRetriever(&embedderFake{err: errors.New("ollama down")}, &vectorStoreFake{})

	_, err := r.Search(context.Background(), "anything", 3)
	if !domain.IsKind(err, domain.ErrRetrievalUnavailable) {
		t.Fatalf("expected ErrRetrievalUnavailable, got %v", err)
	}
}

func TestRetrieverStoreFailure(t *testing.T) {
	store := &vectorStoreFake{err: errors.New("qdrant unreachable")}
	r := NewRetriever(&embedderFake{vector: []float32{1, 0}}, store)

	_, err := r.Search(context.Background(), "anything", 3)
	if !domain.IsKind(err, domain.ErrRetrievalUnavailable) {
		t.Fatalf("expected ErrRetrievalUnavailable, got %v", err)
	}
}
