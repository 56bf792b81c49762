package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// ItemResponse is returned by list item mutations.
type ItemResponse struct {
	Revision uint64 `json:"revision"`
	Matched  bool   `json:"matched"`
	Item     any    `json:"item,omitempty"`
}

func (s *Server) handleGetResume(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// handleReplaceResume replaces the whole document after schema validation.
func (s *Server) handleReplaceResume(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "could not read request body"})
		return
	}
	if err := schemas.ValidateResume(body); err != nil {
		s.errorResponse(w, err)
		return
	}

	var doc types.ResumeData
	if err := json.Unmarshal(body, &doc); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}

	snap, err := s.store.Update(func(types.ResumeData) (types.ResumeData, error) {
		return resume.FromDocument(doc)
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, snap)
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Reset())
}

func (s *Server) handleUpdatePersonalDetails(w http.ResponseWriter, r *http.Request) {
	var patch resume.PersonalDetailsPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		s.errorResponse(w, err)
		return
	}

	snap, err := s.store.Update(func(data types.ResumeData) (types.ResumeData, error) {
		return resume.UpdatePersonalDetails(data, patch), nil
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, snap)
}

// handleReplaceField replaces one top-level field with the request body.
func (s *Server) handleReplaceField(w http.ResponseWriter, r *http.Request) {
	field, err := resume.ParseField(r.PathValue("field"))
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	var value any
	switch field {
	case resume.FieldSummary:
		value, err = decodeValue[string](w, r)
	case resume.FieldPersonalDetails:
		value, err = decodeValue[types.PersonalDetails](w, r)
	case resume.FieldExperience:
		value, err = decodeValue[[]types.WorkExperience](w, r)
	case resume.FieldEducation:
		value, err = decodeValue[[]types.Education](w, r)
	case resume.FieldSkills:
		value, err = decodeValue[[]types.Skill](w, r)
	case resume.FieldCustomSections:
		value, err = decodeValue[[]types.CustomSection](w, r)
	}
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	snap, err := s.store.Update(func(data types.ResumeData) (types.ResumeData, error) {
		return resume.ReplaceField(data, field, value)
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, snap)
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	list, err := resume.ParseListName(r.PathValue("list"))
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	switch list {
	case resume.ListExperience:
		addItem[types.WorkExperience](s, w, r, list)
	case resume.ListEducation:
		addItem[types.Education](s, w, r, list)
	case resume.ListSkills:
		addItem[types.Skill](s, w, r, list)
	case resume.ListCustomSections:
		addItem[types.CustomSection](s, w, r, list)
	}
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	list, err := resume.ParseListName(r.PathValue("list"))
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	id := r.PathValue("id")
	switch list {
	case resume.ListExperience:
		updateItem[types.WorkExperience](s, w, r, list, id)
	case resume.ListEducation:
		updateItem[types.Education](s, w, r, list, id)
	case resume.ListSkills:
		updateItem[types.Skill](s, w, r, list, id)
	case resume.ListCustomSections:
		updateItem[types.CustomSection](s, w, r, list, id)
	}
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	list, err := resume.ParseListName(r.PathValue("list"))
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	id := r.PathValue("id")
	var matched bool
	snap, err := s.store.Apply(func(data types.ResumeData) (types.ResumeData, bool, error) {
		out, ok, err := resume.RemoveItem(data, list, id)
		matched = ok
		return out, ok, err
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.logUnmatched("remove", list, id, matched)
	s.jsonResponse(w, http.StatusOK, ItemResponse{Revision: snap.Revision, Matched: matched})
}

func addItem[T resume.Item[T]](s *Server, w http.ResponseWriter, r *http.Request, list resume.ListName) {
	var item T
	if err := decodeJSON(w, r, &item); err != nil {
		s.errorResponse(w, err)
		return
	}

	var added T
	snap, err := s.store.Update(func(data types.ResumeData) (types.ResumeData, error) {
		out, stored, err := resume.AddItem(data, list, item)
		added = stored
		return out, err
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, ItemResponse{Revision: snap.Revision, Matched: true, Item: added})
}

// updateItem replaces the item with the path ID. An unknown ID is not an
// error: the model and revision are left unchanged and matched is false.
func updateItem[T resume.Item[T]](s *Server, w http.ResponseWriter, r *http.Request, list resume.ListName, id string) {
	var item T
	if err := decodeJSON(w, r, &item); err != nil {
		s.errorResponse(w, err)
		return
	}
	item = item.WithID(id)

	var matched bool
	snap, err := s.store.Apply(func(data types.ResumeData) (types.ResumeData, bool, error) {
		out, ok, err := resume.UpdateItem(data, list, item)
		matched = ok
		return out, ok, err
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.logUnmatched("update", list, id, matched)

	resp := ItemResponse{Revision: snap.Revision, Matched: matched}
	if matched {
		resp.Item = item
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) logUnmatched(op string, list resume.ListName, id string, matched bool) {
	if !matched && s.verbose {
		log.Printf("[resume] %s: no %s item with id %q, model unchanged", op, list, id)
	}
}

// decodeJSON decodes a bounded request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return &ErrValidation{Field: "body", Message: "request body is required"}
		}
		return &ErrValidation{Field: "body", Message: "Invalid request body: " + err.Error()}
	}
	return nil
}

// decodeOptionalJSON is decodeJSON that accepts an empty body.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return &ErrValidation{Field: "body", Message: "Invalid request body: " + err.Error()}
	}
	return nil
}

func decodeValue[V any](w http.ResponseWriter, r *http.Request) (V, error) {
	var v V
	err := decodeJSON(w, r, &v)
	return v, err
}
