// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintResume outputs a summary of the resume model.
func (p *Printer) PrintResume(data *types.ResumeData) {
	if data == nil {
		return
	}

	var sb strings.Builder
	pd := data.PersonalDetails
	sb.WriteString(fmt.Sprintf("Name:     %s\n", pd.FullName))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", pd.Email))
	if pd.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", pd.Phone))
	}
	sb.WriteString("\n")

	if data.Summary != "" {
		sb.WriteString(fmt.Sprintf("Summary:  %s\n\n", truncate(data.Summary, 44)))
	}

	if len(data.Experience) > 0 {
		sb.WriteString(fmt.Sprintf("Experience (%d):\n", len(data.Experience)))
		count := min(len(data.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := data.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s", exp.JobTitle, exp.Company))
			if n := len(exp.Responsibilities); n > 0 {
				sb.WriteString(fmt.Sprintf(" [%d bullets]", n))
			}
			sb.WriteString("\n")
		}
		if len(data.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(data.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(data.Education) > 0 {
		sb.WriteString(fmt.Sprintf("Education (%d):\n", len(data.Education)))
		count := min(len(data.Education), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", data.Education[i].Degree))
		}
		if len(data.Education) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(data.Education)-3))
		}
		sb.WriteString("\n")
	}

	if len(data.Skills) > 0 {
		names := make([]string, 0, len(data.Skills))
		for _, s := range data.Skills {
			names = append(names, s.Name)
		}
		sb.WriteString(fmt.Sprintf("Skills:   %s\n", truncate(strings.Join(names, ", "), 44)))
	}

	if len(data.CustomSections) > 0 {
		titles := make([]string, 0, len(data.CustomSections))
		for _, c := range data.CustomSections {
			titles = append(titles, c.Title)
		}
		sb.WriteString(fmt.Sprintf("Sections: %s\n", strings.Join(titles, ", ")))
	}

	p.printBox("RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCustomization outputs the active template, colors and fonts.
func (p *Printer) PrintCustomization(opts *types.CustomizationOptions) {
	if opts == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template: %s\n", opts.TemplateID))
	scheme := opts.ColorScheme.Name
	if scheme == "" {
		scheme = "custom"
	}
	sb.WriteString(fmt.Sprintf("Colors:   %s (%s, %s)\n", scheme, opts.ColorScheme.Primary, opts.ColorScheme.Accent))
	sb.WriteString(fmt.Sprintf("Font:     %s %s", opts.FontOptions.FontFamily, opts.FontOptions.FontSize))

	p.printBox("CUSTOMIZATION", sb.String())
}

// PrintArtifacts outputs the files written by an export.
func (p *Printer) PrintArtifacts(artifacts []export.Artifact) {
	if len(artifacts) == 0 {
		return
	}

	var sb strings.Builder
	for i, a := range artifacts {
		sb.WriteString(fmt.Sprintf("%s\n", a.FileName))
		sb.WriteString(fmt.Sprintf("  %s, %d bytes", a.ContentType, len(a.Body)))
		if i < len(artifacts)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("EXPORTED FILES", sb.String())
}

// PrintValidation outputs schema violations for a resume document.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(result *schemas.ValidationError) {
	if result == nil || len(result.Errors) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ RESUME IS VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d problems:\n\n", len(result.Errors)))

	for i, e := range result.Errors {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", e.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", truncate(e.Message, 45)))
		if i < len(result.Errors)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SCHEMA VIOLATIONS", strings.TrimSuffix(sb.String(), "\n"))
}
