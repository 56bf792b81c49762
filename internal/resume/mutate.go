package resume

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// Item is implemented by every list element type of ResumeData.
type Item[T any] interface {
	ItemID() string
	WithID(id string) T
}

// PersonalDetailsPatch carries the fields to merge into PersonalDetails.
// Nil fields are left untouched.
type PersonalDetailsPatch struct {
	FullName  *string `json:"fullName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
	Portfolio *string `json:"portfolio,omitempty"`
	Address   *string `json:"address,omitempty"`
}

// UpdatePersonalDetails shallow-merges patch into the personal details.
func UpdatePersonalDetails(data types.ResumeData, patch PersonalDetailsPatch) types.ResumeData {
	out := data
	pd := &out.PersonalDetails
	setIf(&pd.FullName, patch.FullName)
	setIf(&pd.Email, patch.Email)
	setIf(&pd.Phone, patch.Phone)
	setIf(&pd.LinkedIn, patch.LinkedIn)
	setIf(&pd.Portfolio, patch.Portfolio)
	setIf(&pd.Address, patch.Address)
	return out
}

// FromDocument builds a model from a whole decoded document, assigning
// missing item IDs and rejecting duplicates.
func FromDocument(doc types.ResumeData) (types.ResumeData, error) {
	out := types.ResumeData{PersonalDetails: doc.PersonalDetails, Summary: doc.Summary}
	steps := []struct {
		field Field
		value any
	}{
		{FieldExperience, doc.Experience},
		{FieldEducation, doc.Education},
		{FieldSkills, doc.Skills},
		{FieldCustomSections, doc.CustomSections},
	}
	for _, step := range steps {
		var err error
		if out, err = ReplaceField(out, step.field, step.value); err != nil {
			return doc, err
		}
	}
	return out, nil
}

// ReplaceField replaces a top-level field wholesale. List values are copied,
// items without an ID are given one, and duplicate IDs are rejected.
func ReplaceField(data types.ResumeData, field Field, value any) (types.ResumeData, error) {
	out := data
	var err error
	switch field {
	case FieldSummary:
		err = assign(&out.Summary, field, value)
	case FieldPersonalDetails:
		err = assign(&out.PersonalDetails, field, value)
	case FieldExperience:
		err = assignList(&out.Experience, field, value)
	case FieldEducation:
		err = assignList(&out.Education, field, value)
	case FieldSkills:
		err = assignList(&out.Skills, field, value)
	case FieldCustomSections:
		err = assignList(&out.CustomSections, field, value)
	default:
		err = &FieldError{Field: string(field), Message: "unknown field"}
	}
	if err != nil {
		return data, err
	}
	return out, nil
}

// AddItem appends item to the named list under a freshly generated ID and
// returns the new model together with the stored item.
func AddItem[T Item[T]](data types.ResumeData, list ListName, item T) (types.ResumeData, T, error) {
	out := data
	items, err := listOf[T](&out, list)
	if err != nil {
		var zero T
		return data, zero, err
	}

	added := item.WithID(newID(*items))
	next := make([]T, 0, len(*items)+1)
	next = append(next, *items...)
	*items = append(next, added)
	return out, added, nil
}

// UpdateItem replaces the element of the named list whose ID matches item.
// When nothing matches the model is returned unchanged and matched is false;
// this is not an error.
func UpdateItem[T Item[T]](data types.ResumeData, list ListName, item T) (out types.ResumeData, matched bool, err error) {
	out = data
	items, err := listOf[T](&out, list)
	if err != nil {
		return data, false, err
	}

	idx := slices.IndexFunc(*items, func(existing T) bool { return existing.ItemID() == item.ItemID() })
	if idx < 0 {
		return data, false, nil
	}

	next := slices.Clone(*items)
	next[idx] = item.WithID(item.ItemID())
	*items = next
	return out, true, nil
}

// RemoveItem drops the element with the given ID from the named list.
// An absent ID leaves the model unchanged and matched is false.
func RemoveItem(data types.ResumeData, list ListName, id string) (out types.ResumeData, matched bool, err error) {
	out = data
	switch list {
	case ListExperience:
		out.Experience, matched = without(data.Experience, id)
	case ListEducation:
		out.Education, matched = without(data.Education, id)
	case ListSkills:
		out.Skills, matched = without(data.Skills, id)
	case ListCustomSections:
		out.CustomSections, matched = without(data.CustomSections, id)
	default:
		return data, false, &FieldError{Field: string(list), Message: "not a list field"}
	}
	if !matched {
		return data, false, nil
	}
	return out, true, nil
}

// FontOptionsPatch carries the font sub-fields to merge.
type FontOptionsPatch struct {
	FontFamily *string `json:"fontFamily,omitempty"`
	FontSize   *string `json:"fontSize,omitempty"`
}

// CustomizationPatch carries the customization fields to merge.
type CustomizationPatch struct {
	TemplateID  *types.TemplateID  `json:"templateId,omitempty"`
	ColorScheme *types.ColorScheme `json:"colorScheme,omitempty"`
	FontOptions *FontOptionsPatch  `json:"fontOptions,omitempty"`
}

// UpdateCustomization shallow-merges patch into opts. Font options are merged
// one level deep so that setting only the size keeps the family.
func UpdateCustomization(opts types.CustomizationOptions, patch CustomizationPatch) types.CustomizationOptions {
	out := opts
	if patch.TemplateID != nil {
		out.TemplateID = *patch.TemplateID
	}
	if patch.ColorScheme != nil {
		out.ColorScheme = *patch.ColorScheme
	}
	if patch.FontOptions != nil {
		setIf(&out.FontOptions.FontFamily, patch.FontOptions.FontFamily)
		setIf(&out.FontOptions.FontSize, patch.FontOptions.FontSize)
	}
	return out
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// listOf returns a pointer to the named list of data, checked against T.
func listOf[T any](data *types.ResumeData, list ListName) (*[]T, error) {
	var target any
	switch list {
	case ListExperience:
		target = &data.Experience
	case ListEducation:
		target = &data.Education
	case ListSkills:
		target = &data.Skills
	case ListCustomSections:
		target = &data.CustomSections
	default:
		return nil, &FieldError{Field: string(list), Message: "not a list field"}
	}

	items, ok := target.(*[]T)
	if !ok {
		var zero T
		return nil, &FieldError{Field: string(list), Message: fmt.Sprintf("list does not hold %T items", zero)}
	}
	return items, nil
}

func without[T Item[T]](items []T, id string) ([]T, bool) {
	if !slices.ContainsFunc(items, func(it T) bool { return it.ItemID() == id }) {
		return items, false
	}
	out := make([]T, 0, len(items)-1)
	for _, it := range items {
		if it.ItemID() != id {
			out = append(out, it)
		}
	}
	return out, true
}

func assign[V any](dst *V, field Field, value any) error {
	v, ok := value.(V)
	if !ok {
		return &FieldError{Field: string(field), Message: fmt.Sprintf("expected %T, got %T", *dst, value)}
	}
	*dst = v
	return nil
}

func assignList[T Item[T]](dst *[]T, field Field, value any) error {
	items, ok := value.([]T)
	if !ok {
		return &FieldError{Field: string(field), Message: fmt.Sprintf("expected %T, got %T", *dst, value)}
	}

	next := make([]T, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		id := it.ItemID()
		if id == "" {
			continue
		}
		if seen[id] {
			return &FieldError{Field: string(field), Message: fmt.Sprintf("duplicate item id %q", id)}
		}
		seen[id] = true
	}
	for _, it := range items {
		id := it.ItemID()
		if id == "" {
			id = newID(next)
			for seen[id] {
				id = newID(next)
			}
			seen[id] = true
		}
		next = append(next, it.WithID(id))
	}
	*dst = next
	return nil
}

// newID returns a UUID not already used in items.
func newID[T Item[T]](items []T) string {
	for {
		id := uuid.NewString()
		if !slices.ContainsFunc(items, func(it T) bool { return it.ItemID() == id }) {
			return id
		}
	}
}
