package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrFactsUnavailable: fact store missing or malformed. Fatal at
	// startup, there is no degraded mode without facts.
	ErrFactsUnavailable = errors.New("fact store unavailable")
	// ErrRetrievalUnavailable: similarity search failed. Recovered by
	// falling back to the default profile chunk.
	ErrRetrievalUnavailable = errors.New("retrieval unavailable")
	// ErrGenerationFailed: the external generative call failed.
	// Recovered by the refusal fallback, never retried.
	ErrGenerationFailed = errors.New("generation failed")
	ErrInvalidInput     = errors.New("invalid input")
	ErrTemporary        = errors.New("temporary failure")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
