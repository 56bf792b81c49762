package server

import (
	"net/http"
	"testing"

	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetResume_Defaults(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodGet, "/resume", nil)
	require.Equal(t, http.StatusOK, w.Code)

	snap := decode[session.Snapshot](t, w)
	assert.Equal(t, uint64(0), snap.Revision)
	assert.Equal(t, types.InitialResumeData(), snap.Resume)
	assert.Equal(t, types.InitialCustomizationOptions(), snap.Customization)
}

func TestUpdatePersonalDetails(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodPatch, "/resume/personal-details", map[string]string{"fullName": "Ada Lovelace"})
	require.Equal(t, http.StatusOK, w.Code)

	snap := decode[session.Snapshot](t, w)
	assert.Equal(t, "Ada Lovelace", snap.Resume.PersonalDetails.FullName)
	assert.Equal(t, types.InitialResumeData().PersonalDetails.Email, snap.Resume.PersonalDetails.Email)
	assert.Equal(t, uint64(1), snap.Revision)
}

func TestReplaceField(t *testing.T) {
	ts := newTestServer(t)

	t.Run("summary", func(t *testing.T) {
		w := ts.do(t, http.MethodPut, "/resume/fields/summary", `"Ships reliable systems."`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "Ships reliable systems.", decode[session.Snapshot](t, w).Resume.Summary)
	})

	t.Run("skills list gets ids", func(t *testing.T) {
		w := ts.do(t, http.MethodPut, "/resume/fields/skills", []types.Skill{{Name: "Rust"}, {ID: "go", Name: "Go"}})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		skills := decode[session.Snapshot](t, w).Resume.Skills
		require.Len(t, skills, 2)
		assert.NotEmpty(t, skills[0].ID)
		assert.Equal(t, "go", skills[1].ID)
	})

	t.Run("duplicate ids rejected", func(t *testing.T) {
		w := ts.do(t, http.MethodPut, "/resume/fields/skills", []types.Skill{{ID: "a", Name: "x"}, {ID: "a", Name: "y"}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		w := ts.do(t, http.MethodPut, "/resume/fields/hobbies", `"x"`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_request", decode[Notification](t, w).Error)
	})

	t.Run("wrong shape", func(t *testing.T) {
		w := ts.do(t, http.MethodPut, "/resume/fields/summary", `{"a":1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListItemLifecycle(t *testing.T) {
	ts := newTestServer(t)

	// Add Rust then Go
	w := ts.do(t, http.MethodPost, "/resume/lists/skills", types.Skill{Name: "Rust"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = ts.do(t, http.MethodPost, "/resume/lists/skills", types.Skill{Name: "Go"})
	require.Equal(t, http.StatusCreated, w.Code)

	added := decode[struct {
		Item types.Skill `json:"item"`
	}](t, w).Item
	require.NotEmpty(t, added.ID)

	snap := ts.store.Snapshot()
	n := len(snap.Resume.Skills)
	assert.Equal(t, "Rust", snap.Resume.Skills[n-2].Name)
	assert.Equal(t, "Go", snap.Resume.Skills[n-1].Name)

	// Update
	w = ts.do(t, http.MethodPut, "/resume/lists/skills/"+added.ID, types.Skill{Name: "Golang"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[ItemResponse](t, w)
	assert.True(t, resp.Matched)
	assert.Equal(t, "Golang", ts.store.Snapshot().Resume.Skills[n-1].Name)

	// Remove
	w = ts.do(t, http.MethodDelete, "/resume/lists/skills/"+added.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[ItemResponse](t, w).Matched)
	assert.Len(t, ts.store.Snapshot().Resume.Skills, n-1)

	// Removing again is a silent no-op
	before := ts.store.Snapshot()
	w = ts.do(t, http.MethodDelete, "/resume/lists/skills/"+added.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[ItemResponse](t, w)
	assert.False(t, resp.Matched)
	assert.Equal(t, before.Revision, resp.Revision)
	assert.Equal(t, before, ts.store.Snapshot())
}

func TestUpdateItem_UnknownIDIsNoOp(t *testing.T) {
	ts := newTestServer(t)
	before := ts.store.Snapshot()

	w := ts.do(t, http.MethodPut, "/resume/lists/experience/missing", types.WorkExperience{JobTitle: "CTO"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[ItemResponse](t, w)
	assert.False(t, resp.Matched)
	assert.Equal(t, uint64(0), resp.Revision)
	assert.Equal(t, before, ts.store.Snapshot())
}

func TestListRoutes_UnknownList(t *testing.T) {
	ts := newTestServer(t)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPost, "/resume/lists/summary", map[string]string{}).Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodDelete, "/resume/lists/hobbies/x", nil).Code)
}

func TestReplaceResume(t *testing.T) {
	ts := newTestServer(t)

	doc := types.ResumeData{
		PersonalDetails: types.PersonalDetails{FullName: "Grace Hopper", Email: "grace@example.com", Phone: "1"},
		Summary:         "Compiler pioneer.",
		Skills:          []types.Skill{{Name: "COBOL"}},
	}
	w := ts.do(t, http.MethodPut, "/resume", doc)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	snap := decode[session.Snapshot](t, w)
	assert.Equal(t, "Grace Hopper", snap.Resume.PersonalDetails.FullName)
	require.Len(t, snap.Resume.Skills, 1)
	assert.NotEmpty(t, snap.Resume.Skills[0].ID)
	assert.Empty(t, snap.Resume.Experience)

	w = ts.do(t, http.MethodPut, "/resume", `{"summary": 3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid Resume", decode[Notification](t, w).Title)
	assert.Equal(t, "Grace Hopper", ts.store.Snapshot().Resume.PersonalDetails.FullName)
}

func TestReset(t *testing.T) {
	ts := newTestServer(t)
	ts.do(t, http.MethodPut, "/resume/fields/summary", `"changed"`)

	w := ts.do(t, http.MethodPost, "/resume/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, types.InitialResumeData(), decode[session.Snapshot](t, w).Resume)
}

func TestCustomization(t *testing.T) {
	ts := newTestServer(t)

	t.Run("font size keeps family", func(t *testing.T) {
		w := ts.do(t, http.MethodPatch, "/customization", `{"fontOptions":{"fontSize":"text-lg"}}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		opts := decode[types.CustomizationOptions](t, w)
		assert.Equal(t, "text-lg", opts.FontOptions.FontSize)
		assert.Equal(t, types.DefaultFontFamily, opts.FontOptions.FontFamily)
	})

	t.Run("scheme by key and template", func(t *testing.T) {
		w := ts.do(t, http.MethodPatch, "/customization", `{"templateId":"modern","colorSchemeKey":"ocean"}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		opts := decode[types.CustomizationOptions](t, w)
		assert.Equal(t, types.TemplateModern, opts.TemplateID)
		assert.Equal(t, types.ColorSchemes()["ocean"], opts.ColorScheme)
	})

	t.Run("invalid template rejected", func(t *testing.T) {
		before := ts.store.Snapshot().Customization
		w := ts.do(t, http.MethodPatch, "/customization", `{"templateId":"baroque"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, before, ts.store.Snapshot().Customization)
	})

	t.Run("unknown scheme key", func(t *testing.T) {
		w := ts.do(t, http.MethodPatch, "/customization", `{"colorSchemeKey":"neon"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("get", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/customization", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, types.TemplateModern, decode[types.CustomizationOptions](t, w).TemplateID)
	})
}
