package ports

import (
	"context"

	"github.com/mayankdk/portfolio-assistant/internal/core/domain"
)

// FactSource loads the structured portfolio records. Called exactly
// once per process lifetime.
type FactSource interface {
	Load(ctx context.Context) (*domain.Facts, error)
}

// Embedder builds vectors for corpus chunks and query text.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// VectorStore indexes corpus chunks and performs similarity search.
type VectorStore interface {
	IndexChunks(ctx context.Context, chunks []domain.DocumentChunk, vectors [][]float32) error
	Search(ctx context.Context, queryVector []float32, limit int, filter domain.SearchFilter) ([]domain.RetrievedChunk, error)
	Reset(ctx context.Context) error
}

// ContextRetriever returns up to k deduplicated chunk contents for a
// query, most similar first. An empty slice means nothing matched.
type ContextRetriever interface {
	Search(ctx context.Context, query string, k int) ([]string, error)
}

// AnswerGenerator is the external generative capability. Implementations
// must use near-deterministic decoding so the grounding gate behaves
// reproducibly.
type AnswerGenerator interface {
	GenerateGrounded(ctx context.Context, question string, contextChunks []string) (string, error)
}

// AnswerLog records served answers for auditing.
type AnswerLog interface {
	Record(ctx context.Context, rec domain.AnswerRecord) error
}

// ReindexQueue publishes/consumes corpus rebuild requests.
type ReindexQueue interface {
	PublishReindexRequested(ctx context.Context) (string, error)
	SubscribeReindexRequested(ctx context.Context, handler func(context.Context, string) error) error
}
