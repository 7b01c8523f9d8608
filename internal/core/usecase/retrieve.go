package usecase

import (
	"context"
	"fmt"

	"github.com/mayankdk/portfolio-assistant/internal/core/domain"
	"github.com/mayankdk/portfolio-assistant/internal/core/ports"
)

// Retriever serves top-k context chunks for the generative fallback.
// It filters to the query's classified section when possible and widens
// to any section when the filtered set is short. An empty result is
// valid; the caller supplies default context.
type Retriever struct {
	embedder ports.Embedder
	store    ports.VectorStore
}

func NewRetriever(embedder ports.Embedder, store ports.VectorStore) *Retriever {
	return &Retriever{
		embedder: embedder,
		store:    store,
	}
}

func (r *Retriever) Search(ctx context.Context, query string, k int) ([]string, error) {
	if k <= 0 {
		k = 3
	}

	queryVector, err := r.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, domain.WrapError(domain.ErrRetrievalUnavailable, "embed query", err)
	}

	filter := domain.SearchFilter{}
	if section := Classify(query); section.IsContent() {
		filter.Section = section
	}

	hits, err := r.store.Search(ctx, queryVector, k, filter)
	if err != nil {
		return nil, domain.WrapError(domain.ErrRetrievalUnavailable, "vector search", err)
	}

	selected := make([]string, 0, k)
	seen := make(map[string]struct{}, k)
	appendHits := func(hits []domain.RetrievedChunk) {
		for _, hit := range hits {
			if len(selected) == k {
				return
			}
			if _, dup := seen[hit.Content]; dup {
				continue
			}
			seen[hit.Content] = struct{}{}
			selected = append(selected, hit.Content)
		}
	}
	appendHits(hits)

	// Widen to any section when the filtered set came up short.
	if len(selected) < k && filter.Section != "" {
		broad, err := r.store.Search(ctx, queryVector, k*3, domain.SearchFilter{})
		if err != nil {
			return nil, domain.WrapError(domain.ErrRetrievalUnavailable, "vector search", fmt.Errorf("widen: %w", err))
		}
		appendHits(broad)
	}

	return selected, nil
}
