package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mayankdk/portfolio-assistant/internal/core/domain"
)

func writeFactsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write facts file: %v", err)
	}
	return path
}

func TestLoadParsesFacts(t *testing.T) {
	path := writeFactsFile(t, `{
		"profile": {
			"name": "Mayank D. Kulkarni",
			"title": "AI & Full-Stack Developer",
			"languages": ["English: Fluent", "German: Intermediate (A2 certified)"]
		},
		"education": [
			{"degree": "[EDUCATION] BTech in Computer Engineering", "institution": "VIT Pune", "year": "2023 – 2026"}
		],
		"skills": {"ai_ml": ["PyTorch"]}
	}`)

	facts, err := New(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if facts.Profile.Name != "Mayank D. Kulkarni" {
		t.Fatalf("unexpected profile name %q", facts.Profile.Name)
	}
	if len(facts.Education) != 1 || facts.Education[0].Institution != "VIT Pune" {
		t.Fatalf("unexpected education %+v", facts.Education)
	}
	if len(facts.Skills.AIML) != 1 || facts.Skills.AIML[0] != "PyTorch" {
		t.Fatalf("unexpected skills %+v", facts.Skills)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.json")).Load(context.Background())
	if !domain.IsKind(err, domain.ErrFactsUnavailable) {
		t.Fatalf("expected ErrFactsUnavailable, got %v", err)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := writeFactsFile(t, `{"profile": `)
	_, err := New(path).Load(context.Background())
	if !domain.IsKind(err, domain.ErrFactsUnavailable) {
		t.Fatalf("expected ErrFactsUnavailable, got %v", err)
	}
}

func TestLoadRejectsEmptyProfile(t *testing.T) {
	path := writeFactsFile(t, `{"profile": {"name": ""}}`)
	_, err := New(path).Load(context.Background())
	if !domain.IsKind(err, domain.ErrFactsUnavailable) {
		t.Fatalf("expected ErrFactsUnavailable, got %v", err)
	}
}
