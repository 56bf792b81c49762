// Package session holds the single in-memory resume and customization pair
// for the lifetime of the process.
package session

import (
	"errors"
	"sync"

	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/sync/semaphore"
)

// ErrBusy is returned when a generation or export is already in flight.
var ErrBusy = errors.New("another generation or export is already in progress")

// Snapshot is a private copy of the session state at a given revision.
type Snapshot struct {
	Revision      uint64                     `json:"revision"`
	Resume        types.ResumeData           `json:"resume"`
	Customization types.CustomizationOptions `json:"customization"`
}

// Store owns the current resume and customization options. All mutations are
// serialized; readers get deep copies.
type Store struct {
	mu       sync.RWMutex
	resume   types.ResumeData
	options  types.CustomizationOptions
	revision uint64
	busy     *semaphore.Weighted
}

// NewStore creates a store seeded with the static defaults.
func NewStore() *Store {
	return &Store{
		resume:  types.InitialResumeData(),
		options: types.InitialCustomizationOptions(),
		busy:    semaphore.NewWeighted(1),
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Revision:      s.revision,
		Resume:        s.resume.Clone(),
		Customization: s.options,
	}
}

// Revision returns the current revision. It increases on every applied mutation.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Update applies fn to the current resume. If fn fails the state is left as it was.
func (s *Store) Update(fn func(types.ResumeData) (types.ResumeData, error)) (Snapshot, error) {
	return s.Apply(func(data types.ResumeData) (types.ResumeData, bool, error) {
		next, err := fn(data)
		return next, true, err
	})
}

// Apply is Update for mutations that may turn out to be no-ops. When fn
// reports changed as false the resume and revision are left untouched.
func (s *Store) Apply(fn func(types.ResumeData) (types.ResumeData, bool, error)) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed, err := fn(s.resume.Clone())
	if err != nil || !changed {
		return s.snapshotLocked(), err
	}
	s.resume = next.Clone()
	s.revision++
	return s.snapshotLocked(), nil
}

// Customize applies fn to the current customization options. A failing fn
// leaves them unchanged.
func (s *Store) Customize(fn func(types.CustomizationOptions) (types.CustomizationOptions, error)) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.options)
	if err != nil {
		return s.snapshotLocked(), err
	}
	s.options = next
	s.revision++
	return s.snapshotLocked(), nil
}

// Reset restores the startup defaults.
func (s *Store) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resume = types.InitialResumeData()
	s.options = types.InitialCustomizationOptions()
	s.revision++
	return s.snapshotLocked()
}

// TryBegin marks the store busy for a generation or export. The returned
// function clears the flag. ErrBusy is returned if the flag is already held.
func (s *Store) TryBegin() (func(), error) {
	if !s.busy.TryAcquire(1) {
		return nil, ErrBusy
	}
	var once sync.Once
	return func() { once.Do(func() { s.busy.Release(1) }) }, nil
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Revision:      s.revision,
		Resume:        s.resume.Clone(),
		Customization: s.options,
	}
}
