package domain

// Section is the routing target for a query: one of the seven content
// sections, the two meta-categories, or a terminal marker.
type Section string

const (
	SectionProfile        Section = "profile"
	SectionEducation      Section = "education"
	SectionExperience     Section = "experience"
	SectionProjects       Section = "projects"
	SectionSkills         Section = "skills"
	SectionAwards         Section = "awards"
	SectionCertifications Section = "certifications"

	SectionComprehensive Section = "comprehensive"
	SectionSynthesis     Section = "synthesis"

	SectionOutOfContext Section = "out-of-context"
	SectionUnclassified Section = "unclassified"
)

// ContentSections lists the sections that carry stored records, in
// canonical order.
var ContentSections = []Section{
	SectionProfile,
	SectionEducation,
	SectionExperience,
	SectionProjects,
	SectionSkills,
	SectionAwards,
	SectionCertifications,
}

// IsContent reports whether s maps to stored records (as opposed to a
// meta-category or terminal marker).
func (s Section) IsContent() bool {
	for _, candidate := range ContentSections {
		if s == candidate {
			return true
		}
	}
	return false
}
