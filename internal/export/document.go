package export

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// StylesheetURL is the utility stylesheet the rendered markup depends on
const StylesheetURL = "https://cdn.tailwindcss.com"

//go:embed templates/document.html
var documentFS embed.FS

var (
	documentOnce sync.Once
	documentTmpl *template.Template
	documentErr  error
)

type documentView struct {
	Title         string
	StylesheetURL string
	Print         bool
	Body          template.HTML
}

// HTMLDocument wraps a rendered fragment in a standalone document that loads
// the stylesheet and keeps background colors when printed.
func HTMLDocument(fragment template.HTML, title string) (string, error) {
	return document(fragment, title, false)
}

// PrintDocument is HTMLDocument with print rules that strip the preview
// frame so the resume fills the page.
func PrintDocument(fragment template.HTML, title string) (string, error) {
	return document(fragment, title, true)
}

func document(fragment template.HTML, title string, print bool) (string, error) {
	documentOnce.Do(func() {
		documentTmpl, documentErr = template.ParseFS(documentFS, "templates/document.html")
	})
	if documentErr != nil {
		return "", fmt.Errorf("failed to parse document template: %w", documentErr)
	}

	var buf bytes.Buffer
	err := documentTmpl.ExecuteTemplate(&buf, "document.html", documentView{
		Title:         title,
		StylesheetURL: StylesheetURL,
		Print:         print,
		Body:          fragment,
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute document template: %w", err)
	}
	return buf.String(), nil
}

// FileName returns "{fullName}_Resume.{ext}". A blank name yields "Resume.{ext}".
// Characters that are unsafe in file names are replaced with underscores.
func FileName(fullName, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	name := strings.TrimSpace(strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, r == 0x7f:
			return '_'
		case strings.ContainsRune(`/\:*?"<>|`, r):
			return '_'
		}
		return r
	}, fullName))
	if name == "" {
		return "Resume." + ext
	}
	return name + "_Resume." + ext
}

// BaseName strips the extension from a file name, for use as a document title.
func BaseName(fileName string) string {
	if idx := strings.LastIndex(fileName, "."); idx > 0 {
		return fileName[:idx]
	}
	return fileName
}
