// Package types provides type definitions for the resume model and its presentation options.
package types

import "slices"

// PersonalDetails holds the candidate's contact block.
type PersonalDetails struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Address   string `json:"address,omitempty"`
}

// WorkExperience is one entry of the experience list
type WorkExperience struct {
	ID               string   `json:"id"`
	JobTitle         string   `json:"jobTitle"`
	Company          string   `json:"company"`
	Location         string   `json:"location,omitempty"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Responsibilities []string `json:"responsibilities"`
}

// Education is one entry of the education list
type Education struct {
	ID             string `json:"id"`
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	Location       string `json:"location,omitempty"`
	GraduationDate string `json:"graduationDate"`
	Details        string `json:"details,omitempty"`
}

// Skill is one entry of the skills list
type Skill struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomSection is a user-defined titled block rendered after the standard sections.
type CustomSection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ResumeData is the whole resume model. Slice order is display order and
// item IDs are unique within their list.
type ResumeData struct {
	PersonalDetails PersonalDetails  `json:"personalDetails"`
	Summary         string           `json:"summary"`
	Experience      []WorkExperience `json:"experience"`
	Education       []Education      `json:"education"`
	Skills          []Skill          `json:"skills"`
	CustomSections  []CustomSection  `json:"customSections"`
}

// ItemID returns the item identifier.
func (e WorkExperience) ItemID() string { return e.ID }

// WithID returns a copy of the item carrying id.
func (e WorkExperience) WithID(id string) WorkExperience {
	e.ID = id
	e.Responsibilities = slices.Clone(e.Responsibilities)
	return e
}

// ItemID returns the item identifier.
func (e Education) ItemID() string { return e.ID }

// WithID returns a copy of the item carrying id.
func (e Education) WithID(id string) Education {
	e.ID = id
	return e
}

// ItemID returns the item identifier.
func (s Skill) ItemID() string { return s.ID }

// WithID returns a copy of the item carrying id.
func (s Skill) WithID(id string) Skill {
	s.ID = id
	return s
}

// ItemID returns the item identifier.
func (c CustomSection) ItemID() string { return c.ID }

// WithID returns a copy of the item carrying id.
func (c CustomSection) WithID(id string) CustomSection {
	c.ID = id
	return c
}

// Clone returns a deep copy of the resume so the copy shares no backing arrays with r.
func (r ResumeData) Clone() ResumeData {
	out := r
	out.Experience = make([]WorkExperience, len(r.Experience))
	for i, exp := range r.Experience {
		exp.Responsibilities = slices.Clone(exp.Responsibilities)
		out.Experience[i] = exp
	}
	out.Education = slices.Clone(r.Education)
	out.Skills = slices.Clone(r.Skills)
	out.CustomSections = slices.Clone(r.CustomSections)
	return out
}

// TemplateID identifies a resume layout
type TemplateID string

// Supported templates
const (
	TemplateClassic  TemplateID = "classic"
	TemplateModern   TemplateID = "modern"
	TemplateCreative TemplateID = "creative"
)

// Valid reports whether id names a known template.
func (id TemplateID) Valid() bool {
	switch id {
	case TemplateClassic, TemplateModern, TemplateCreative:
		return true
	default:
		return false
	}
}

// ColorScheme is a named set of five semantic color roles. Each role holds a
// utility class (e.g. "text-blue-700") applied by the templates.
type ColorScheme struct {
	Name       string `json:"name,omitempty"`
	Primary    string `json:"primary" validate:"required"`
	Secondary  string `json:"secondary" validate:"required"`
	Accent     string `json:"accent" validate:"required"`
	Background string `json:"background" validate:"required"`
	Text       string `json:"text" validate:"required"`
}

// FontOptions selects the font family and base size classes.
type FontOptions struct {
	FontFamily string `json:"fontFamily" validate:"required"`
	FontSize   string `json:"fontSize" validate:"required"`
}

// CustomizationOptions is the visual configuration of the rendered resume.
// Any combination of valid values is allowed.
type CustomizationOptions struct {
	TemplateID  TemplateID  `json:"templateId" validate:"required,oneof=classic modern creative"`
	ColorScheme ColorScheme `json:"colorScheme"`
	FontOptions FontOptions `json:"fontOptions"`
}
