// Package export produces downloadable HTML documents and printed PDFs of
// the rendered resume.
package export

import (
	"context"
	"errors"
	"log"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// Content types of exported artifacts
const (
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypePDF  = "application/pdf"
)

// Artifact is an exported file.
type Artifact struct {
	FileName    string
	ContentType string
	Body        []byte
}

// Exporter renders the resume and packages it as a file. It never changes the model.
type Exporter struct {
	surface PrintSurface
}

// NewExporter creates an exporter. surface may be nil, in which case PDF
// export fails with a ContextError.
func NewExporter(surface PrintSurface) *Exporter {
	return &Exporter{surface: surface}
}

// HTML renders data with opts and wraps it in a standalone document.
func (e *Exporter) HTML(data types.ResumeData, opts types.CustomizationOptions) (Artifact, error) {
	fragment, err := rendering.Render(data, opts)
	if err != nil {
		return Artifact{}, err
	}

	fileName := FileName(data.PersonalDetails.FullName, "html")
	doc, err := HTMLDocument(fragment, BaseName(fileName))
	if err != nil {
		return Artifact{}, err
	}

	log.Printf("[export] html %s (%d bytes)", fileName, len(doc))
	return Artifact{FileName: fileName, ContentType: ContentTypeHTML, Body: []byte(doc)}, nil
}

// PDF renders data with opts and prints it through the surface.
func (e *Exporter) PDF(ctx context.Context, data types.ResumeData, opts types.CustomizationOptions) (Artifact, error) {
	if e.surface == nil {
		return Artifact{}, &ContextError{Message: ContextErrorMessage}
	}

	fragment, err := rendering.Render(data, opts)
	if err != nil {
		return Artifact{}, err
	}

	fileName := FileName(data.PersonalDetails.FullName, "pdf")
	title := BaseName(fileName)
	doc, err := PrintDocument(fragment, title)
	if err != nil {
		return Artifact{}, err
	}

	pdf, err := e.surface.Print(ctx, PrintJob{Title: title, Document: doc})
	if err != nil {
		var ctxErr *ContextError
		if errors.As(err, &ctxErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Artifact{}, err
		}
		return Artifact{}, &ContextError{Message: ContextErrorMessage, Cause: err}
	}

	log.Printf("[export] pdf %s (%d bytes)", fileName, len(pdf))
	return Artifact{FileName: fileName, ContentType: ContentTypePDF, Body: pdf}, nil
}
