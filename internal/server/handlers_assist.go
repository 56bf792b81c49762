package server

import (
	"net/http"

	"github.com/jonathan/resume-builder/internal/assist"
)

// GenerateRequest is the body of POST /assist/generate
type GenerateRequest struct {
	Section  string `json:"section" validate:"required,oneof=summary experienceItem"`
	ItemID   string `json:"itemId,omitempty" validate:"required_if=Section experienceItem"`
	Context  string `json:"context,omitempty" validate:"max=2000"`
	Industry string `json:"industry,omitempty" validate:"max=200"`
	Role     string `json:"role,omitempty" validate:"max=200"`
}

// AdviceRequest is the body of POST /assist/keywords and /assist/ats
type AdviceRequest struct {
	Industry string `json:"industry,omitempty" validate:"max=200"`
	Role     string `json:"role,omitempty" validate:"max=200"`
}

// JobMatchRequest is the body of POST /assist/job-match
type JobMatchRequest struct {
	JobDescription string `json:"jobDescription" validate:"max=50000"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, err)
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, err)
		return
	}

	section, err := assist.ParseSection(req.Section, req.ItemID, req.Context)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	snap, err := s.assist.Generate(r.Context(), s.store, assist.GenerateRequest{
		Section:  section,
		Industry: req.Industry,
		Role:     req.Role,
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, snap)
}

func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeAdvice(w, r)
	if !ok {
		return
	}
	advice, err := s.assist.KeywordSuggestions(r.Context(), s.store, req.Industry, req.Role)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, advice)
}

func (s *Server) handleATS(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeAdvice(w, r)
	if !ok {
		return
	}
	advice, err := s.assist.ATSAdvice(r.Context(), s.store, req.Industry, req.Role)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, advice)
}

func (s *Server) handleJobMatch(w http.ResponseWriter, r *http.Request) {
	var req JobMatchRequest
	if err := decodeOptionalJSON(w, r, &req); err != nil {
		s.errorResponse(w, err)
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, err)
		return
	}

	advice, err := s.assist.JobMatch(r.Context(), s.store, req.JobDescription)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, advice)
}

// decodeAdvice reads an optional industry/role body. Blank values fall back
// to the generator defaults.
func (s *Server) decodeAdvice(w http.ResponseWriter, r *http.Request) (AdviceRequest, bool) {
	var req AdviceRequest
	if err := decodeOptionalJSON(w, r, &req); err != nil {
		s.errorResponse(w, err)
		return req, false
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, err)
		return req, false
	}
	return req, true
}
