package assist

import (
	"log"
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/types"
)

// Section names accepted on the wire
const (
	SectionSummary        = "summary"
	SectionExperienceItem = "experienceItem"
)

// Section is the part of the resume a generation request targets.
// The set of sections is closed: SummarySection and ExperienceItemSection.
type Section interface {
	// Name is the wire name of the section
	Name() string
	// task returns the section-specific prompt suffix
	task(data types.ResumeData) (string, error)
	// merge writes generated text into data
	merge(data types.ResumeData, text string) (types.ResumeData, error)
	// hint is the optional user context
	hint() string
}

// SummarySection drafts the professional summary.
type SummarySection struct {
	Context string `json:"context,omitempty"`
}

// Name implements Section
func (SummarySection) Name() string { return SectionSummary }

func (s SummarySection) hint() string { return s.Context }

func (SummarySection) task(types.ResumeData) (string, error) {
	return prompts.Get(prompts.AssistFile, "summary_focus")
}

func (SummarySection) merge(data types.ResumeData, text string) (types.ResumeData, error) {
	return resume.ReplaceField(data, resume.FieldSummary, text)
}

// ExperienceItemSection drafts bullet points for one work experience entry.
type ExperienceItemSection struct {
	ItemID  string `json:"itemId"`
	Context string `json:"context,omitempty"`
}

// Name implements Section
func (ExperienceItemSection) Name() string { return SectionExperienceItem }

func (s ExperienceItemSection) hint() string { return s.Context }

func (s ExperienceItemSection) task(data types.ResumeData) (string, error) {
	exp, ok := findExperience(data, s.ItemID)
	if !ok {
		return "", &InputError{Field: "itemId", Message: "no experience entry with id " + s.ItemID}
	}
	return prompts.Render(prompts.AssistFile, "experience_focus", map[string]string{
		"JobTitle": exp.JobTitle,
		"Company":  exp.Company,
	})
}

// merge replaces the responsibilities of the target entry. If the entry was
// removed while the request was in flight the model is left unchanged.
func (s ExperienceItemSection) merge(data types.ResumeData, text string) (types.ResumeData, error) {
	exp, ok := findExperience(data, s.ItemID)
	if !ok {
		log.Printf("[assist] experience item %s no longer exists, discarding generated bullets", s.ItemID)
		return data, nil
	}
	exp.Responsibilities = ParseBullets(text)
	out, matched, err := resume.UpdateItem(data, resume.ListExperience, exp)
	if err != nil {
		return data, err
	}
	if !matched {
		log.Printf("[assist] experience item %s not matched on merge", s.ItemID)
	}
	return out, nil
}

// ParseSection builds a Section from its wire name.
func ParseSection(name, itemID, context string) (Section, error) {
	switch name {
	case SectionSummary:
		return SummarySection{Context: context}, nil
	case SectionExperienceItem:
		if strings.TrimSpace(itemID) == "" {
			return nil, &InputError{Field: "itemId", Message: "required for experienceItem"}
		}
		return ExperienceItemSection{ItemID: itemID, Context: context}, nil
	default:
		return nil, &InputError{Field: "section", Message: "unknown section " + name}
	}
}

// bulletMarker matches a list marker followed by whitespace or end of line,
// so "-40%" and "2.1M" are kept.
var bulletMarker = regexp.MustCompile(`^(?:[-*•]|\d+[.)])(?:\s+|$)`)

// ParseBullets splits generated text into one responsibility per line,
// dropping list markers and blank lines.
func ParseBullets(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(bulletMarker.ReplaceAllString(line, ""))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func findExperience(data types.ResumeData, id string) (types.WorkExperience, bool) {
	for _, exp := range data.Experience {
		if exp.ID == id {
			return exp, true
		}
	}
	return types.WorkExperience{}, false
}
