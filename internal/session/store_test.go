package session

import (
	"errors"
	"sync"
	"testing"

	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_Defaults(t *testing.T) {
	s := NewStore()
	snap := s.Snapshot()

	assert.Equal(t, types.InitialResumeData(), snap.Resume)
	assert.Equal(t, types.InitialCustomizationOptions(), snap.Customization)
	assert.Zero(t, snap.Revision)
}

func TestStore_UpdateBumpsRevision(t *testing.T) {
	s := NewStore()

	snap, err := s.Update(func(d types.ResumeData) (types.ResumeData, error) {
		return resume.ReplaceField(d, resume.FieldSummary, "Updated")
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(1), snap.Revision)
	assert.Equal(t, "Updated", snap.Resume.Summary)
	assert.Equal(t, uint64(1), s.Revision())
}

func TestStore_FailedUpdateKeepsState(t *testing.T) {
	s := NewStore()
	before := s.Snapshot()

	_, err := s.Update(func(d types.ResumeData) (types.ResumeData, error) {
		d.Summary = "half-applied"
		return d, errors.New("boom")
	})
	require.Error(t, err)

	after := s.Snapshot()
	assert.Equal(t, before.Resume, after.Resume)
	assert.Equal(t, before.Revision, after.Revision)
}

func TestStore_SnapshotIsPrivateCopy(t *testing.T) {
	s := NewStore()
	snap := s.Snapshot()
	snap.Resume.Skills[0].Name = "mutated"
	snap.Resume.Experience[0].Responsibilities[0] = "mutated"

	fresh := s.Snapshot()
	assert.Equal(t, "JavaScript (React, Node.js)", fresh.Resume.Skills[0].Name)
	assert.Equal(t, "Led a team of 5 developers.", fresh.Resume.Experience[0].Responsibilities[0])
}

func TestStore_CustomizeAndReset(t *testing.T) {
	s := NewStore()
	modern := types.TemplateModern

	snap, err := s.Customize(func(o types.CustomizationOptions) (types.CustomizationOptions, error) {
		return resume.UpdateCustomization(o, resume.CustomizationPatch{TemplateID: &modern}), nil
	})
	require.NoError(t, err)
	assert.Equal(t, types.TemplateModern, snap.Customization.TemplateID)

	reset := s.Reset()
	assert.Equal(t, types.TemplateClassic, reset.Customization.TemplateID)
	assert.Equal(t, uint64(2), reset.Revision)
}

func TestStore_TryBeginSingleFlight(t *testing.T) {
	s := NewStore()

	done, err := s.TryBegin()
	require.NoError(t, err)

	_, err = s.TryBegin()
	assert.ErrorIs(t, err, ErrBusy)

	done()
	done() // releasing twice is harmless

	again, err := s.TryBegin()
	require.NoError(t, err)
	again()
}

func TestStore_ConcurrentUpdatesAreSerialized(t *testing.T) {
	s := NewStore()
	start := len(s.Snapshot().Resume.Skills)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Update(func(d types.ResumeData) (types.ResumeData, error) {
				out, _, err := resume.AddItem(d, resume.ListSkills, types.Skill{Name: "Go"})
				return out, err
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	assert.Len(t, snap.Resume.Skills, start+50)
	assert.Equal(t, uint64(50), snap.Revision)
}

func TestStore_ApplyUnchangedKeepsRevision(t *testing.T) {
	s := NewStore()
	before := s.Snapshot()

	snap, err := s.Apply(func(data types.ResumeData) (types.ResumeData, bool, error) {
		out, matched, err := resume.RemoveItem(data, resume.ListSkills, "missing")
		return out, matched, err
	})
	require.NoError(t, err)
	assert.Equal(t, before, snap)
	assert.Equal(t, uint64(0), s.Revision())

	snap, err = s.Apply(func(data types.ResumeData) (types.ResumeData, bool, error) {
		return resume.RemoveItem(data, resume.ListSkills, "skill1")
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), snap.Revision)
	assert.Len(t, snap.Resume.Skills, len(before.Resume.Skills)-1)
}
