package server

import (
	"context"
	"log"
	"mime"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-builder/internal/export"
)

func (s *Server) handleExportHTML(w http.ResponseWriter, _ *http.Request) {
	snap := s.store.Snapshot()
	artifact, err := s.exporter.HTML(snap.Resume, snap.Customization)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	writeArtifact(w, artifact)
}

// handleExportPDF prints the current state. Only one export or generation
// runs at a time.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	release, err := s.store.TryBegin()
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	defer release()

	ctx, cancel := context.WithTimeout(r.Context(), s.exportTimeout)
	defer cancel()

	snap := s.store.Snapshot()
	artifact, err := s.exporter.PDF(ctx, snap.Resume, snap.Customization)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	writeArtifact(w, artifact)
}

func writeArtifact(w http.ResponseWriter, artifact export.Artifact) {
	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": artifact.FileName}))
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(artifact.Body); err != nil {
		log.Printf("[export] failed writing %s: %v", artifact.FileName, err)
	}
}
