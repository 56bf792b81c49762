package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeData_CloneIsIndependent(t *testing.T) {
	original := InitialResumeData()
	clone := original.Clone()

	clone.Experience[0].Responsibilities[0] = "changed"
	clone.Skills[0].Name = "changed"
	clone.CustomSections = append(clone.CustomSections, CustomSection{ID: "x"})

	assert.Equal(t, "Led a team of 5 developers.", original.Experience[0].Responsibilities[0])
	assert.Equal(t, "JavaScript (React, Node.js)", original.Skills[0].Name)
	assert.Len(t, original.CustomSections, 1)
}

func TestInitialResumeData_FreshCopies(t *testing.T) {
	a := InitialResumeData()
	a.Skills[0].Name = "mutated"

	b := InitialResumeData()
	assert.Equal(t, "JavaScript (React, Node.js)", b.Skills[0].Name)
}

func TestInitialResumeData_UniqueIDs(t *testing.T) {
	data := InitialResumeData()
	seen := map[string]bool{}
	for _, e := range data.Experience {
		require.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
	for _, e := range data.Education {
		require.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
}

func TestWorkExperience_WithIDCopiesResponsibilities(t *testing.T) {
	exp := WorkExperience{ID: "a", Responsibilities: []string{"one"}}
	copied := exp.WithID("b")

	copied.Responsibilities[0] = "two"
	assert.Equal(t, "one", exp.Responsibilities[0])
	assert.Equal(t, "b", copied.ID)
	assert.Equal(t, "a", exp.ID)
}

func TestTemplateID_Valid(t *testing.T) {
	for _, tmpl := range Templates() {
		assert.True(t, tmpl.ID.Valid(), tmpl.ID)
	}
	assert.False(t, TemplateID("fancy").Valid())
}

func TestCustomizationOptions_Validate(t *testing.T) {
	opts := InitialCustomizationOptions()
	require.NoError(t, opts.Validate())

	opts.TemplateID = "fancy"
	assert.Error(t, opts.Validate())

	opts = InitialCustomizationOptions()
	opts.FontOptions.FontFamily = ""
	assert.Error(t, opts.Validate())
}

func TestColorSchemes_KeysMatch(t *testing.T) {
	schemes := ColorSchemes()
	assert.Len(t, schemes, len(ColorSchemeKeys))
	for _, key := range ColorSchemeKeys {
		scheme, ok := schemes[key]
		require.True(t, ok, key)
		assert.NotEmpty(t, scheme.Name)
	}
}
