package usecase

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/mayankdk/portfolio-assistant/internal/core/domain"
)

// CanonicalRefusal is the single user-visible failure surface. Every
// refusal, gate rejection and degraded path funnels into this sentence.
const CanonicalRefusal = "This information is not available in Mayank's portfolio."

// RefusalGuidance is appended to out-of-domain refusals to steer the
// user back to answerable topics.
const RefusalGuidance = " Please ask about Mayank's background, skills, projects, experience, education, or other portfolio-related topics."

func sectionSentinel(label string) string {
	return fmt.Sprintf("%s information is not available in Mayank's portfolio.", label)
}

var leadingYearPattern = regexp.MustCompile(`^\s*(\d{4})`)
var anyYearPattern = regexp.MustCompile(`\d{4}`)

// stripRecordTag removes a leading bracketed category tag such as
// "[EDUCATION] " that some stored fields carry.
func stripRecordTag(s string) string {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "[") {
		if end := strings.Index(trimmed, "]"); end > 0 {
			return strings.TrimSpace(trimmed[end+1:])
		}
	}
	return trimmed
}

// ExtractEducation renders all education entries most recent first.
// Entries whose year range has no leading 4-digit year sort last.
func ExtractEducation(f *domain.Facts) string {
	if len(f.Education) == 0 {
		return sectionSentinel("Education")
	}

	entries := make([]domain.EducationEntry, len(f.Education))
	copy(entries, f.Education)
	sort.SliceStable(entries, func(i, j int) bool {
		return leadingYear(entries[i].Years) > leadingYear(entries[j].Years)
	})

	lines := []string{"Mayank's Education:"}
	for _, edu := range entries {
		lines = append(lines, fmt.Sprintf("• %s at %s (%s)",
			stripRecordTag(edu.Degree), edu.Institution, edu.Years))
	}
	return strings.Join(lines, "\n")
}

func leadingYear(years string) int {
	m := leadingYearPattern.FindStringSubmatch(years)
	if m == nil {
		return 0
	}
	year := 0
	for _, c := range m[1] {
		year = year*10 + int(c-'0')
	}
	return year
}

// ExtractExperience renders all experience entries sorted by the first
// 4-digit year found in the period, most recent first.
func ExtractExperience(f *domain.Facts) string {
	if len(f.Experience) == 0 {
		return sectionSentinel("Experience")
	}

	entries := make([]domain.ExperienceEntry, len(f.Experience))
	copy(entries, f.Experience)
	sort.SliceStable(entries, func(i, j int) bool {
		return periodYear(entries[i].Period) > periodYear(entries[j].Period)
	})

	lines := []string{"Mayank's Work Experience:"}
	for _, exp := range entries {
		lines = append(lines, "\n"+stripRecordTag(exp.Role))
		lines = append(lines, "  Company: "+exp.Company)
		lines = append(lines, "  Period: "+exp.Period)
		if len(exp.Technologies) > 0 {
			lines = append(lines, "  Technologies: "+strings.Join(exp.Technologies, ", "))
		}
	}
	return strings.Join(lines, "\n")
}

func periodYear(period string) int {
	m := anyYearPattern.FindString(period)
	if m == "" {
		return 0
	}
	year := 0
	for _, c := range m {
		year = year*10 + int(c-'0')
	}
	return year
}

// projectAliases maps normalized query substrings to a stored project
// name fragment. A hit narrows the listing to one project in full detail.
var projectAliases = []struct {
	queryTerms   []string
	nameContains string
}{
	{[]string{"phishguard", "phishing", "url detector"}, "phishguard"},
	{[]string{"part number"}, "part number"},
	{[]string{"yogar", "yoga"}, "yogar"},
}

// ExtractProjects renders either a detailed single-project block when
// the query names a known project, or the summary listing of all
// projects in storage order (no sort applied).
func ExtractProjects(f *domain.Facts, query string) string {
	if len(f.Projects) == 0 {
		return sectionSentinel("Project")
	}

	q := strings.ToLower(query)
	for _, alias := range projectAliases {
		if !containsAny(q, alias.queryTerms...) {
			continue
		}
		for _, proj := range f.Projects {
			if strings.Contains(strings.ToLower(stripRecordTag(proj.Name)), alias.nameContains) {
				return formatProjectDetail(proj)
			}
		}
	}

	lines := []string{"Mayank's Projects:"}
	for _, proj := range f.Projects {
		lines = append(lines, "\n"+stripRecordTag(proj.Name))
		if proj.Description != "" {
			lines = append(lines, "  Description: "+proj.Description)
		}
		if len(proj.Technologies) > 0 {
			lines = append(lines, "  Technologies: "+strings.Join(proj.Technologies, ", "))
		}
		if proj.Role != "" {
			lines = append(lines, "  Role: "+proj.Role)
		}
		if proj.Timeline != "" {
			lines = append(lines, "  Timeline: "+proj.Timeline)
		}
	}
	return strings.Join(lines, "\n")
}

func formatProjectDetail(proj domain.ProjectEntry) string {
	lines := []string{"Project: " + stripRecordTag(proj.Name)}
	if proj.Description != "" {
		lines = append(lines, "\nDescription: "+proj.Description)
	}
	if len(proj.Features) > 0 {
		lines = append(lines, "\nFeatures:")
		for _, feature := range proj.Features {
			lines = append(lines, "  • "+feature)
		}
	}
	if len(proj.Technologies) > 0 {
		lines = append(lines, "\nTechnologies: "+strings.Join(proj.Technologies, ", "))
	}
	if proj.Role != "" {
		lines = append(lines, "\nMayank's Role: "+proj.Role)
	}
	if proj.Timeline != "" {
		lines = append(lines, "\nTimeline: "+proj.Timeline)
	}
	return strings.Join(lines, "\n")
}

// ExtractSkills renders the four fixed buckets in canonical order, no
// sorting applied.
func ExtractSkills(f *domain.Facts) string {
	s := f.Skills
	if len(s.AIML) == 0 && len(s.Development) == 0 && len(s.BackendDatabase) == 0 && len(s.SoftSkills) == 0 {
		return sectionSentinel("Skills")
	}

	lines := []string{"Mayank's Technical Skills:"}
	appendBucket := func(label string, skills []string) {
		if len(skills) == 0 {
			return
		}
		lines = append(lines, "\n"+label+":")
		for _, skill := range skills {
			lines = append(lines, "  • "+skill)
		}
	}
	appendBucket("AI & ML", s.AIML)
	appendBucket("Development", s.Development)
	appendBucket("Backend & Databases", s.BackendDatabase)
	appendBucket("Soft Skills", s.SoftSkills)
	return strings.Join(lines, "\n")
}

func ExtractAwards(f *domain.Facts) string {
	if len(f.Awards) == 0 {
		return sectionSentinel("Awards")
	}

	lines := []string{"Mayank's Awards:"}
	for _, award := range f.Awards {
		lines = append(lines, "\n• "+award.Title)
		if award.Description != "" {
			lines = append(lines, "  "+award.Description)
		}
	}
	return strings.Join(lines, "\n")
}

func ExtractCertifications(f *domain.Facts) string {
	if len(f.Certifications) == 0 {
		return sectionSentinel("Certifications")
	}

	lines := []string{"Mayank's Certifications:"}
	for _, cert := range f.Certifications {
		lines = append(lines, "• "+cert)
	}
	return strings.Join(lines, "\n")
}

// ExtractProfile renders the profile record. The rendered body matches
// the profile corpus chunk so the grounding gate sees identical text on
// both read paths.
func ExtractProfile(f *domain.Facts) string {
	if f.Profile.Name == "" {
		return sectionSentinel("Profile")
	}
	return "Mayank's Profile:\n\n" + profileChunkContent(f.Profile)
}
