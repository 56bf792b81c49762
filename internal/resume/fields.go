package resume

// Field names a top-level field of ResumeData.
type Field string

// Top-level fields
const (
	FieldPersonalDetails Field = "personalDetails"
	FieldSummary         Field = "summary"
	FieldExperience      Field = "experience"
	FieldEducation       Field = "education"
	FieldSkills          Field = "skills"
	FieldCustomSections  Field = "customSections"
)

// ListName names a list-typed top-level field of ResumeData.
type ListName string

// List-typed fields
const (
	ListExperience     ListName = ListName(FieldExperience)
	ListEducation      ListName = ListName(FieldEducation)
	ListSkills         ListName = ListName(FieldSkills)
	ListCustomSections ListName = ListName(FieldCustomSections)
)

// ParseField converts a wire name into a Field.
func ParseField(name string) (Field, error) {
	switch f := Field(name); f {
	case FieldPersonalDetails, FieldSummary, FieldExperience, FieldEducation, FieldSkills, FieldCustomSections:
		return f, nil
	default:
		return "", &FieldError{Field: name, Message: "unknown field"}
	}
}

// ParseListName converts a wire name into a ListName. Top-level fields that
// are not lists are rejected.
func ParseListName(name string) (ListName, error) {
	switch l := ListName(name); l {
	case ListExperience, ListEducation, ListSkills, ListCustomSections:
		return l, nil
	default:
		return "", &FieldError{Field: name, Message: "not a list field"}
	}
}
