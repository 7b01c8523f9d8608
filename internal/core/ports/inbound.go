package ports

import (
	"context"

	"github.com/mayankdk/portfolio-assistant/internal/core/domain"
)

// QuestionAnswerer is the single entry point for answering a query.
// The returned answer is always a well-formed user-facing string; all
// recoverable failures are absorbed behind the canonical refusal.
type QuestionAnswerer interface {
	Answer(ctx context.Context, question string) (domain.Answer, error)
}

// IndexRebuilder rebuilds the search corpus from the fact store.
type IndexRebuilder interface {
	Rebuild(ctx context.Context) (int, error)
}
