package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mayankdk/portfolio-assistant/internal/core/domain"
)

// Source loads the portfolio fact store from a JSON file on disk. The
// file is the single source of truth; it is read once at boot and on
// every index rebuild.
type Source struct {
	path string
}

func New(path string) *Source {
	if path == "" {
		path = "./data/portfolio.json"
	}
	return &Source{path: path}
}

func (s *Source) Load(_ context.Context) (*domain.Facts, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, domain.WrapError(domain.ErrFactsUnavailable, "read facts file", err)
	}

	var facts domain.Facts
	if err := json.Unmarshal(raw, &facts); err != nil {
		return nil, domain.WrapError(domain.ErrFactsUnavailable, "parse facts file", err)
	}
	if facts.Profile.Name == "" {
		return nil, domain.WrapError(domain.ErrFactsUnavailable, "validate facts file",
			fmt.Errorf("profile name is empty in %s", s.path))
	}
	return &facts, nil
}
