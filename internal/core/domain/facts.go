package domain

// Facts is the immutable portfolio record set, loaded once at startup.
// Nothing mutates it during request handling.
type Facts struct {
	Profile        Profile           `json:"profile"`
	Education      []EducationEntry  `json:"education"`
	Experience     []ExperienceEntry `json:"experience"`
	Projects       []ProjectEntry    `json:"projects"`
	Skills         SkillSet          `json:"skills"`
	Awards         []AwardEntry      `json:"awards"`
	Certifications []string          `json:"certifications"`
}

type Profile struct {
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	Email        string   `json:"email"`
	Bio          string   `json:"bio"`
	Availability string   `json:"availability"`
	Focus        []string `json:"focus"`
	// Languages holds "Name: ProficiencyLevel" entries in canonical order.
	Languages []string `json:"languages"`
	Interests []string `json:"interests"`
}

type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	// Years is a range string such as "2023 – 2026"; the leading
	// 4-digit year is the sort key.
	Years string `json:"year"`
}

type ExperienceEntry struct {
	Role         string   `json:"role"`
	Company      string   `json:"company"`
	Period       string   `json:"period"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
}

type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Technologies []string `json:"technologies"`
	Role         string   `json:"role"`
	Timeline     string   `json:"timeline"`
}

// SkillSet keeps the four fixed buckets in their stored order.
type SkillSet struct {
	AIML            []string `json:"ai_ml"`
	Development     []string `json:"development"`
	BackendDatabase []string `json:"backend_database"`
	SoftSkills      []string `json:"soft_skills"`
}

type AwardEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
