package usecase

import (
	"context"
	"fmt"

	"github.com/mayankdk/portfolio-assistant/internal/core/domain"
	"github.com/mayankdk/portfolio-assistant/internal/core/ports"
)

// RebuildIndexUseCase rebuilds the search corpus from the fact store:
// denormalize, embed, reset the collection, index. The fact store is
// the source of truth; the vector collection is always disposable.
type RebuildIndexUseCase struct {
	facts    *domain.Facts
	embedder ports.Embedder
	store    ports.VectorStore
}

func NewRebuildIndexUseCase(facts *domain.Facts, embedder ports.Embedder, store ports.VectorStore) *RebuildIndexUseCase {
	return &RebuildIndexUseCase{
		facts:    facts,
		embedder: embedder,
		store:    store,
	}
}

func (uc *RebuildIndexUseCase) Rebuild(ctx context.Context) (int, error) {
	chunks := BuildCorpus(uc.facts)
	if len(chunks) == 0 {
		return 0, fmt.Errorf("fact store produced no corpus chunks")
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Content
	}

	vectors, err := uc.embedder.Embed(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("embed corpus: %w", err)
	}
	if len(vectors) != len(chunks) {
		return 0, fmt.Errorf("embedder returned %d vectors for %d chunks", len(vectors), len(chunks))
	}

	if err := uc.store.Reset(ctx); err != nil {
		return 0, fmt.Errorf("reset collection: %w", err)
	}
	if err := uc.store.IndexChunks(ctx, chunks, vectors); err != nil {
		return 0, fmt.Errorf("index chunks: %w", err)
	}
	return len(chunks), nil
}
