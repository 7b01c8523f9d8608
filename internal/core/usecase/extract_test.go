package usecase

import (
	"strings"
	"testing"

	"github.com/mayankdk/portfolio-assistant/internal/core/domain"
)

func TestExtractEducationSortsMostRecentFirst(t *testing.T) {
	got := ExtractEducation(testFacts())

	lines := strings.Split(got, "\n")
	if lines[0] != "Mayank's Education:" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "BTech") || !strings.Contains(lines[1], "2023 – 2026") {
		t.Fatalf("expected BTech (2023) first, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "Diploma") {
		t.Fatalf("expected Diploma (2020) second, got %q", lines[2])
	}
	// Unparsable year range sorts last with key 0.
	if !strings.Contains(lines[3], "Exchange Semester") {
		t.Fatalf("expected unparsable-year entry last, got %q", lines[3])
	}
	if strings.Contains(got, "[EDUCATION]") {
		t.Fatalf("category tag must be stripped: %q", got)
	}
}

func TestExtractExperienceSortsByPeriodYear(t *testing.T) {
	got := ExtractExperience(testFacts())

	internIdx := strings.Index(got, "AI Intern")
	secretaryIdx := strings.Index(got, "Web Development Secretary")
	if internIdx < 0 || secretaryIdx < 0 {
		t.Fatalf("missing roles in output:\n%s", got)
	}
	if internIdx > secretaryIdx {
		t.Fatalf("expected 2026 role before 2024 role:\n%s", got)
	}
	if !strings.Contains(got, "  Company: TE Connectivity") {
		t.Fatalf("missing company line:\n%s", got)
	}
}

func TestExtractorsAreDeterministic(t *testing.T) {
	f := testFacts()
	renders := []func() string{
		func() string { return ExtractEducation(f) },
		func() string { return ExtractExperience(f) },
		func() string { return ExtractProjects(f, "projects") },
		func() string { return ExtractSkills(f) },
		func() string { return ExtractAwards(f) },
		func() string { return ExtractCertifications(f) },
		func() string { return ExtractProfile(f) },
		func() string { return ExtractComprehensive(f) },
	}
	for i, render := range renders {
		if first, second := render(), render(); first != second {
			t.Errorf("extractor %d not byte-identical across calls", i)
		}
	}
}

func TestEmptySectionsReturnSentinels(t *testing.T) {
	empty := &domain.Facts{}
	cases := []struct {
		got  string
		want string
	}{
		{ExtractEducation(empty), "Education information is not available in Mayank's portfolio."},
		{ExtractExperience(empty), "Experience information is not available in Mayank's portfolio."},
		{ExtractProjects(empty, ""), "Project information is not available in Mayank's portfolio."},
		{ExtractSkills(empty), "Skills information is not available in Mayank's portfolio."},
		{ExtractAwards(empty), "Awards information is not available in Mayank's portfolio."},
		{ExtractCertifications(empty), "Certifications information is not available in Mayank's portfolio."},
		{ExtractProfile(empty), "Profile information is not available in Mayank's portfolio."},
		{ExtractComprehensive(empty), "Credential information is not available in Mayank's portfolio."},
		{ExtractLanguages(empty, "what languages"), "Language information is not available in Mayank's portfolio."},
	}
	for i, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("case %d: got %q, want %q", i, tc.got, tc.want)
		}
	}
}

func TestExtractProjectsListingInStorageOrder(t *testing.T) {
	got := ExtractProjects(testFacts(), "What projects has Mayank worked on?")

	if !strings.HasPrefix(got, "Mayank's Projects:") {
		t.Fatalf("listing must start with header, got %q", got)
	}
	phish := strings.Index(got, "PhishGuard AI")
	part := strings.Index(got, "Part Number Recognition System")
	yogar := strings.Index(got, "YogAR")
	if !(phish < part && part < yogar) {
		t.Fatalf("projects must appear in storage order:\n%s", got)
	}
	for _, field := range []string{"  Description: ", "  Technologies: ", "  Role: ", "  Timeline: "} {
		if !strings.Contains(got, field) {
			t.Errorf("listing missing field %q", field)
		}
	}
}

func TestExtractProjectsAliasNarrowsToDetail(t *testing.T) {
	for _, query := range []string{
		"Tell me about PhishGuard",
		"How does the phishing detector work?",
		"the url detector project",
	} {
		got := ExtractProjects(testFacts(), query)
		if !strings.HasPrefix(got, "Project: PhishGuard AI") {
			t.Fatalf("query %q: expected detail block, got:\n%s", query, got)
		}
		if !strings.Contains(got, "Features:") || !strings.Contains(got, "Mayank's Role: ") {
			t.Fatalf("detail block missing sections:\n%s", got)
		}
	}
}

func TestExtractComprehensiveComposition(t *testing.T) {
	got := ExtractComprehensive(testFacts())

	for _, part := range []string{
		"Mayank's Education:",
		"Mayank's Certifications:",
		"Current Role: AI Intern",
		"Key Expertise: AI/ML technologies, Full-stack development, Backend systems & databases",
	} {
		if !strings.Contains(got, part) {
			t.Errorf("comprehensive output missing %q:\n%s", part, got)
		}
	}
}

func TestExtractComprehensiveOmitsEmptyParts(t *testing.T) {
	f := testFacts()
	f.Certifications = nil
	got := ExtractComprehensive(f)
	if strings.Contains(got, "Certifications") {
		t.Fatalf("empty certifications must be omitted, not rendered:\n%s", got)
	}
	if !strings.Contains(got, "Mayank's Education:") {
		t.Fatalf("education should remain:\n%s", got)
	}
}

func TestExtractLanguagesHardLock(t *testing.T) {
	f := testFacts()
	cases := []struct {
		query string
		want  string
	}{
		{"Is Mayank fluent in German?", germanFluencyNegation},
		{"Is German his native language?", germanFluencyNegation},
		{"What is Mayank's German proficiency?", "Mayank's German proficiency: Intermediate (A2 certified)"},
		{"Does he speak English?", "Mayank's English proficiency: Fluent"},
		{"Does he speak Hindi?", "Mayank's Hindi proficiency: Native"},
		{"Does he speak Marathi?", "Mayank's Marathi proficiency: Native"},
		{"What languages does Mayank speak?", "Mayank speaks: English: Fluent, Hindi: Native, Marathi: Native, German: Intermediate (A2 certified)"},
	}
	for _, tc := range cases {
		if got := ExtractLanguages(f, tc.query); got != tc.want {
			t.Errorf("ExtractLanguages(%q) = %q, want %q", tc.query, got, tc.want)
		}
	}
}
