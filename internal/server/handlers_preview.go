package server

import (
	"io"
	"log"
	"net/http"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/types"
)

// CustomizationRequest patches the customization. ColorSchemeKey selects a
// built-in scheme and is applied before an explicit ColorScheme.
type CustomizationRequest struct {
	resume.CustomizationPatch
	ColorSchemeKey string `json:"colorSchemeKey,omitempty"`
}

// OptionsResponse is the catalog of selectable customization values.
type OptionsResponse struct {
	Templates       []types.TemplateInfo         `json:"templates"`
	ColorSchemeKeys []string                     `json:"colorSchemeKeys"`
	ColorSchemes    map[string]types.ColorScheme `json:"colorSchemes"`
	FontFamilies    []types.Option               `json:"fontFamilies"`
	FontSizes       []types.Option               `json:"fontSizes"`
}

func (s *Server) handleGetCustomization(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot().Customization)
}

func (s *Server) handleUpdateCustomization(w http.ResponseWriter, r *http.Request) {
	var req CustomizationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, err)
		return
	}

	patch := req.CustomizationPatch
	if req.ColorSchemeKey != "" && patch.ColorScheme == nil {
		scheme, ok := types.ColorSchemes()[req.ColorSchemeKey]
		if !ok {
			s.errorResponse(w, &ErrValidation{Field: "colorSchemeKey", Message: "unknown color scheme " + req.ColorSchemeKey})
			return
		}
		patch.ColorScheme = &scheme
	}

	snap, err := s.store.Customize(func(opts types.CustomizationOptions) (types.CustomizationOptions, error) {
		next := resume.UpdateCustomization(opts, patch)
		if err := s.validator.Struct(next); err != nil {
			return opts, err
		}
		return next, nil
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, snap.Customization)
}

func (s *Server) handleOptions(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, OptionsResponse{
		Templates:       types.Templates(),
		ColorSchemeKeys: types.ColorSchemeKeys,
		ColorSchemes:    types.ColorSchemes(),
		FontFamilies:    types.FontFamilies(),
		FontSizes:       types.FontSizes(),
	})
}

// handlePreview returns the rendered fragment for the current state.
func (s *Server) handlePreview(w http.ResponseWriter, _ *http.Request) {
	snap := s.store.Snapshot()
	fragment, err := rendering.Render(snap.Resume, snap.Customization)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	writeHTML(w, string(fragment))
}

// handlePage returns the preview as a standalone document.
func (s *Server) handlePage(w http.ResponseWriter, _ *http.Request) {
	snap := s.store.Snapshot()
	fragment, err := rendering.Render(snap.Resume, snap.Customization)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	doc, err := export.HTMLDocument(fragment, "Resume Builder")
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	writeHTML(w, doc)
}

func writeHTML(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", export.ContentTypeHTML)
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, body); err != nil {
		log.Printf("Error writing HTML response: %v", err)
	}
}
