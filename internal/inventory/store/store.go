package store

import (
	"sync"
	"time"

	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/domain"
	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/utils"
)

// Clock abstracts time retrieval so timestamps are deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time in UTC.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }

// IDGenerator abstracts project ID generation.
type IDGenerator interface {
	New() string
}

// PrefixedIDs produces random "prj_<hex>" IDs.
type PrefixedIDs struct{}

func (PrefixedIDs) New() string { return utils.NewID("prj") }

type Option func(*Store)

func WithClock(c Clock) Option {
	return func(s *Store) { s.clock = c }
}

func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) { s.ids = g }
}

// Store is the in-memory, insertion-ordered collection of projects owned by one session.
// Every snapshot it hands out is a deep copy.
type Store struct {
	mu       sync.RWMutex
	projects []domain.Project
	clock    Clock
	ids      IDGenerator
}

func New(opts ...Option) *Store {
	s := &Store{
		clock: RealClock{},
		ids:   PrefixedIDs{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create materializes a draft with a fresh ID and createdAt == updatedAt == now.
func (s *Store) Create(d domain.Draft) domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.ids.New()
	for s.indexOf(id) >= 0 {
		id = s.ids.New()
	}

	now := s.clock.Now()
	p := fromDraft(d)
	p.ID = id
	p.CreatedAt = now
	p.UpdatedAt = now

	s.projects = append(s.projects, p)
	return p.Clone()
}

// Update replaces every mutable field in place, keeping ID, CreatedAt and position.
// An unknown ID returns domain.ErrNotFound and changes nothing.
func (s *Store) Update(id string, d domain.Draft) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Project{}, domain.ErrNotFound
	}

	prev := s.projects[i]
	p := fromDraft(d)
	p.ID = prev.ID
	p.CreatedAt = prev.CreatedAt
	p.UpdatedAt = s.clock.Now()
	if p.UpdatedAt.Before(prev.UpdatedAt) {
		p.UpdatedAt = prev.UpdatedAt
	}

	s.projects[i] = p
	return p.Clone(), nil
}

// Delete removes the project and reports whether it existed. Deleting twice is harmless.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.projects = append(s.projects[:i], s.projects[i+1:]...)
	return true
}

func (s *Store) Get(id string) (domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Project{}, domain.ErrNotFound
	}
	return s.projects[i].Clone(), nil
}

// Find returns matching projects in insertion order.
func (s *Store) Find(q domain.Query) []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if q.Matches(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Snapshot returns the matching projects and the stats of the whole store,
// both read under one lock so they always agree.
func (s *Store) Snapshot(q domain.Query) ([]domain.Project, domain.Stats) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Project, 0, len(s.projects))
	var st domain.Stats
	for _, p := range s.projects {
		st.Add(p)
		if q.Matches(p) {
			out = append(out, p.Clone())
		}
	}
	return out, st
}

// All is Find with no constraints.
func (s *Store) All() []domain.Project {
	return s.Find(domain.Query{DevelopmentType: domain.TypeAll})
}

func (s *Store) Stats() domain.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st domain.Stats
	for _, p := range s.projects {
		st.Add(p)
	}
	return st
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.projects)
}

func (s *Store) indexOf(id string) int {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return i
		}
	}
	return -1
}

func fromDraft(d domain.Draft) domain.Project {
	d = d.Clone()
	return domain.Project{
		Name:            d.Name,
		Purpose:         d.Purpose,
		DevelopmentType: d.DevelopmentType,
		Language:        d.Language,
		DatabaseType:    d.DatabaseType,
		DiagramURL:      d.DiagramURL,
		Connections:     d.Connections,
	}
}
