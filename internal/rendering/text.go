package rendering

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-builder/internal/types"
)

// VisibleText returns the trimmed, non-empty text nodes of markup in document
// order. Script, style and head content is skipped. It accepts both rendered
// fragments and exported standalone documents.
func VisibleText(markup string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, &RenderError{Message: "failed to parse markup", Cause: err}
	}

	doc.Find("head, script, style, noscript, template").Remove()

	var texts []string
	var walk func(*goquery.Selection)
	walk = func(sel *goquery.Selection) {
		sel.Contents().Each(func(_ int, node *goquery.Selection) {
			if goquery.NodeName(node) == "#text" {
				if text := strings.TrimSpace(node.Text()); text != "" {
					texts = append(texts, text)
				}
				return
			}
			walk(node)
		})
	}
	walk(doc.Find("body"))

	return texts, nil
}

// PlainText renders the resume as plain text for use in generator prompts.
// Empty fields and sections are left out.
func PlainText(data types.ResumeData) string {
	var sb strings.Builder

	pd := data.PersonalDetails
	writeLine(&sb, pd.FullName)
	contact := joinNonEmpty(" | ", pd.Email, pd.Phone, pd.Address, pd.LinkedIn, pd.Portfolio)
	writeLine(&sb, contact)

	if data.Summary != "" {
		sb.WriteString("\nSUMMARY\n")
		writeLine(&sb, data.Summary)
	}

	if len(data.Experience) > 0 {
		sb.WriteString("\nEXPERIENCE\n")
		for _, exp := range data.Experience {
			writeLine(&sb, joinNonEmpty(" at ", exp.JobTitle, exp.Company))
			writeLine(&sb, joinNonEmpty(" | ", exp.Location, joinNonEmpty(" - ", exp.StartDate, exp.EndDate)))
			for _, r := range exp.Responsibilities {
				if r = strings.TrimSpace(r); r != "" {
					sb.WriteString(fmt.Sprintf("- %s\n", r))
				}
			}
		}
	}

	if len(data.Education) > 0 {
		sb.WriteString("\nEDUCATION\n")
		for _, edu := range data.Education {
			writeLine(&sb, joinNonEmpty(", ", edu.Degree, edu.Institution))
			writeLine(&sb, joinNonEmpty(" | ", edu.Location, edu.GraduationDate))
			writeLine(&sb, edu.Details)
		}
	}

	if len(data.Skills) > 0 {
		names := make([]string, 0, len(data.Skills))
		for _, s := range data.Skills {
			names = append(names, s.Name)
		}
		sb.WriteString("\nSKILLS\n")
		writeLine(&sb, joinNonEmpty(", ", names...))
	}

	for _, section := range data.CustomSections {
		if section.Title == "" || section.Content == "" {
			continue
		}
		sb.WriteString("\n" + strings.ToUpper(section.Title) + "\n")
		writeLine(&sb, section.Content)
	}

	return strings.TrimSpace(sb.String())
}

func writeLine(sb *strings.Builder, line string) {
	if line = strings.TrimSpace(line); line != "" {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
