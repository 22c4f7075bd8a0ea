package store

import (
	"sort"
	"sync"

	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/domain"
)

// Registry hands every authenticated owner their own Store.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
	seed   []domain.Draft
	opts   []Option
}

// NewRegistry creates a registry. Each new Store gets opts and is preloaded with seed.
func NewRegistry(seed []domain.Draft, opts ...Option) *Registry {
	return &Registry{
		stores: make(map[string]*Store),
		seed:   seed,
		opts:   opts,
	}
}

// For returns the owner's Store, creating it on first use.
func (r *Registry) For(ownerID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.stores[ownerID]; ok {
		return s
	}
	s := New(r.opts...)
	for _, d := range r.seed {
		s.Create(d)
	}
	r.stores[ownerID] = s
	return s
}

// Drop forgets the owner's Store and reports whether one existed.
func (r *Registry) Drop(ownerID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.stores[ownerID]; !ok {
		return false
	}
	delete(r.stores, ownerID)
	return true
}

func (r *Registry) Owners() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.stores))
	for id := range r.stores {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Totals aggregates stats over every Store.
func (r *Registry) Totals() (owners int, stats domain.Stats) {
	r.mu.Lock()
	stores := make([]*Store, 0, len(r.stores))
	for _, s := range r.stores {
		stores = append(stores, s)
	}
	r.mu.Unlock()

	for _, s := range stores {
		st := s.Stats()
		stats.Total += st.Total
		stats.Web += st.Web
		stats.Desktop += st.Desktop
		stats.Legacy += st.Legacy
		stats.Other += st.Other
	}
	return len(stores), stats
}
