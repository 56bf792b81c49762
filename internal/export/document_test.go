package export

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		ext      string
		expected string
	}{
		{name: "simple", fullName: "Ada Lovelace", ext: "html", expected: "Ada Lovelace_Resume.html"},
		{name: "dotted extension", fullName: "Ada", ext: ".pdf", expected: "Ada_Resume.pdf"},
		{name: "blank name", fullName: "   ", ext: "pdf", expected: "Resume.pdf"},
		{name: "empty name", fullName: "", ext: "html", expected: "Resume.html"},
		{name: "unsafe characters", fullName: `A/B "C"`, ext: "html", expected: "A_B _C__Resume.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FileName(tt.fullName, tt.ext))
		})
	}
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "Ada_Resume", BaseName("Ada_Resume.pdf"))
	assert.Equal(t, "Resume", BaseName("Resume"))
	assert.Equal(t, ".hidden", BaseName(".hidden"))
}

func TestHTMLDocument(t *testing.T) {
	doc, err := HTMLDocument(template.HTML(`<div id="resume-preview-content"><p>Hi</p></div>`), `Ada <Admin>_Resume`)
	require.NoError(t, err)

	assert.Contains(t, doc, "<!DOCTYPE html>")
	assert.Contains(t, doc, `<meta charset="UTF-8">`)
	assert.Contains(t, doc, `name="viewport"`)
	assert.Contains(t, doc, `<script src="https://cdn.tailwindcss.com"></script>`)
	assert.Contains(t, doc, "print-color-adjust: exact")
	assert.Contains(t, doc, `<div id="resume-preview-content"><p>Hi</p></div>`)
	assert.Contains(t, doc, "<title>Ada &lt;Admin&gt;_Resume</title>")
	assert.NotContains(t, doc, "@media print")
}

func TestPrintDocument(t *testing.T) {
	doc, err := PrintDocument(template.HTML(`<p>Hi</p>`), "Ada_Resume")
	require.NoError(t, err)
	assert.Contains(t, doc, "@media print")
	assert.Contains(t, doc, "#resume-preview-content")
	assert.Contains(t, doc, "page-break-inside: avoid")
}
