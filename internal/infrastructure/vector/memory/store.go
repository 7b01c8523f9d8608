package memory

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/mayankdk/portfolio-assistant/internal/core/domain"
)

// Store is an in-process vector index using brute-force cosine
// similarity. The portfolio corpus is a dozen chunks, so a linear scan
// beats maintaining an external collection; Reset plus IndexChunks on
// boot fully rebuilds it.
type Store struct {
	mu      sync.RWMutex
	chunks  []domain.DocumentChunk
	vectors [][]float32
}

func New() *Store { return &Store{} }

func (s *Store) IndexChunks(_ context.Context, chunks []domain.DocumentChunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return domain.WrapError(domain.ErrRetrievalUnavailable, "memory upsert", errVectorMismatch)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = append(s.chunks, chunks...)
	s.vectors = append(s.vectors, vectors...)
	return nil
}

func (s *Store) Search(_ context.Context, queryVector []float32, limit int, filter domain.SearchFilter) ([]domain.RetrievedChunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 3
	}

	hits := make([]domain.RetrievedChunk, 0, len(s.chunks))
	for i, chunk := range s.chunks {
		if filter.Section != "" && chunk.Section != filter.Section {
			continue
		}
		hits = append(hits, domain.RetrievedChunk{
			Section: chunk.Section,
			Content: chunk.Content,
			Score:   cosineSimilarity(s.vectors[i], queryVector),
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

func (s *Store) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = nil
	s.vectors = nil
	return nil
}

func cosineSimilarity(a, b []float32) float64 {
	n := min(len(a), len(b))
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
