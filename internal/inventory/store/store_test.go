package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/domain"
)

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time { return c.now }

func (c *stubClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type seqIDs struct {
	n int
}

func (g *seqIDs) New() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func newTestStore() (*Store, *stubClock) {
	clock := &stubClock{now: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)}
	return New(WithClock(clock), WithIDGenerator(&seqIDs{})), clock
}

func draft(name, purpose string, t domain.DevelopmentType) domain.Draft {
	return domain.Draft{
		Name:            name,
		Purpose:         purpose,
		DevelopmentType: t,
		Language:        "Go",
		DatabaseType:    "PostgreSQL",
	}
}

func names(ps []domain.Project) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}

func TestStore_CreateAssignsDistinctIDs(t *testing.T) {
	s := New()
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		p := s.Create(draft(fmt.Sprintf("p%d", i), "x", domain.Web))
		require.NotEmpty(t, p.ID)
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
	assert.Equal(t, 200, s.Len())
}

func TestStore_CreateRetriesOnCollision(t *testing.T) {
	clock := &stubClock{now: time.Now()}
	ids := &repeatIDs{values: []string{"dup", "dup", "fresh"}}
	s := New(WithClock(clock), WithIDGenerator(ids))

	a := s.Create(draft("A", "x", domain.Web))
	b := s.Create(draft("B", "x", domain.Web))

	assert.Equal(t, "dup", a.ID)
	assert.Equal(t, "fresh", b.ID)
}

type repeatIDs struct {
	values []string
	i      int
}

func (g *repeatIDs) New() string {
	v := g.values[g.i]
	g.i++
	return v
}

func TestStore_CreateThenFindAll(t *testing.T) {
	s, _ := newTestStore()
	p := s.Create(draft("Inventario", "Sistema de Inventario", domain.Web))

	all := s.Find(domain.Query{SearchText: "", DevelopmentType: domain.TypeAll})
	require.Len(t, all, 1)
	assert.Equal(t, p.ID, all[0].ID)
	assert.Equal(t, all[0].CreatedAt, all[0].UpdatedAt)
	assert.NotNil(t, all[0].Connections)
}

func TestStore_Update(t *testing.T) {
	s, clock := newTestStore()
	orig := s.Create(draft("A", "first", domain.Web))
	s.Create(draft("B", "second", domain.Desktop))

	clock.Advance(time.Minute)
	next := domain.Draft{
		Name:            "A2",
		Purpose:         "changed",
		DevelopmentType: domain.Legacy,
		Language:        "COBOL",
		DatabaseType:    "DB2",
		DiagramURL:      "https://example.com/a.png",
		Connections: []domain.Connection{
			{ID: "c1", Name: "ERP", DataFlow: domain.DataFlow{Sends: "orders"}},
		},
	}

	got, err := s.Update(orig.ID, next)
	require.NoError(t, err)

	assert.Equal(t, orig.ID, got.ID)
	assert.Equal(t, orig.CreatedAt, got.CreatedAt)
	assert.True(t, got.UpdatedAt.After(orig.UpdatedAt))
	assert.Equal(t, next, got.Draft())

	// position is kept
	assert.Equal(t, []string{"A2", "B"}, names(s.All()))
}

func TestStore_UpdateNeverMovesUpdatedAtBackwards(t *testing.T) {
	s, clock := newTestStore()
	orig := s.Create(draft("A", "x", domain.Web))

	clock.Advance(-time.Hour)
	got, err := s.Update(orig.ID, draft("A", "y", domain.Web))
	require.NoError(t, err)
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func TestStore_UpdateUnknownIDLeavesStoreUnchanged(t *testing.T) {
	s, _ := newTestStore()
	s.Create(draft("A", "x", domain.Web))
	before := s.All()

	_, err := s.Update("missing", draft("Z", "z", domain.Legacy))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, before, s.All())
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	s, _ := newTestStore()
	a := s.Create(draft("A", "x", domain.Web))
	s.Create(draft("B", "x", domain.Web))

	assert.True(t, s.Delete(a.ID))
	afterOnce := s.All()
	assert.False(t, s.Delete(a.ID))
	assert.Equal(t, afterOnce, s.All())

	for _, q := range []domain.Query{
		{DevelopmentType: domain.TypeAll},
		{SearchText: "A"},
		{DevelopmentType: domain.TypeWeb},
	} {
		for _, p := range s.Find(q) {
			assert.NotEqual(t, a.ID, p.ID)
		}
	}

	_, err := s.Get(a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_FindSearchIsCaseInsensitive(t *testing.T) {
	s, _ := newTestStore()
	s.Create(draft("Stock", "Sistema de Inventario", domain.Web))
	s.Create(draft("Nomina", "Pagos", domain.Web))

	got := s.Find(domain.Query{SearchText: "inventario", DevelopmentType: domain.TypeAll})
	assert.Equal(t, []string{"Stock"}, names(got))
}

func TestStore_FindByDevelopmentType(t *testing.T) {
	s, _ := newTestStore()
	s.Create(draft("A", "x", domain.Web))
	s.Create(draft("B", "x", domain.Legacy))
	s.Create(draft("C", "x", domain.ParseDevelopmentType("mainframe")))
	s.Create(draft("D", "x", domain.Legacy))

	assert.Equal(t, []string{"B", "D"}, names(s.Find(domain.Query{DevelopmentType: domain.TypeLegacy})))
	assert.Equal(t, []string{"A", "B", "C", "D"}, names(s.Find(domain.Query{DevelopmentType: domain.TypeAll})))
	assert.Equal(t, []string{"C"}, names(s.Find(domain.Query{DevelopmentType: "mainframe"})))
}

func TestStore_Scenario(t *testing.T) {
	s, _ := newTestStore()
	s.Create(draft("A", "alpha", domain.Web))
	s.Create(draft("B", "beta", domain.Desktop))
	s.Create(draft("C", "gamma", domain.Legacy))

	assert.Equal(t, []string{"A"}, names(s.Find(domain.Query{DevelopmentType: domain.TypeWeb})))
	assert.Equal(t, []string{"B"}, names(s.Find(domain.Query{SearchText: "b", DevelopmentType: domain.TypeAll})))
}

func TestStore_SnapshotsAreIsolated(t *testing.T) {
	s, _ := newTestStore()
	d := draft("A", "x", domain.Web).AddConnection(domain.ConnectionDraft{Name: "ERP"})
	p := s.Create(d)

	p.Connections[0].Name = "mutated"
	p.Name = "mutated"
	d.Connections[0].Name = "mutated-draft"

	got, err := s.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
	assert.Equal(t, "ERP", got.Connections[0].Name)
}

func TestStore_RemovingConnectionFromDraftKeepsSavedProject(t *testing.T) {
	s, _ := newTestStore()
	saved := s.Create(draft("A", "x", domain.Web).AddConnection(domain.ConnectionDraft{Name: "ERP"}))

	edited := saved.Draft().RemoveConnection(saved.Connections[0].ID)
	assert.Empty(t, edited.Connections)

	got, err := s.Get(saved.ID)
	require.NoError(t, err)
	require.Len(t, got.Connections, 1)
	assert.Equal(t, "ERP", got.Connections[0].Name)
}

func TestStore_Stats(t *testing.T) {
	s, _ := newTestStore()
	s.Create(draft("A", "x", domain.Web))
	s.Create(draft("B", "x", domain.Web))
	s.Create(draft("C", "x", domain.Desktop))
	s.Create(draft("D", "x", domain.Legacy))
	s.Create(draft("E", "x", domain.ParseDevelopmentType("embedded")))

	assert.Equal(t, domain.Stats{Total: 5, Web: 2, Desktop: 1, Legacy: 1, Other: 1}, s.Stats())
}

func TestStore_SnapshotAgreesWithStats(t *testing.T) {
	s, _ := newTestStore()
	s.Create(draft("Portal", "x", domain.Web))
	s.Create(draft("ERP", "x", domain.Legacy))

	items, stats := s.Snapshot(domain.Query{DevelopmentType: domain.TypeLegacy})
	assert.Equal(t, []string{"ERP"}, names(items))
	assert.Equal(t, domain.Stats{Total: 2, Web: 1, Legacy: 1}, stats)
}

func TestStore_SnapshotUnderConcurrentWrites(t *testing.T) {
	s := New()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			p := s.Create(draft("A", "x", domain.Web))
			s.Delete(p.ID)
		}
	}()

	for i := 0; i < 200; i++ {
		items, stats := s.Snapshot(domain.Query{DevelopmentType: domain.TypeAll})
		require.Equal(t, stats.Total, len(items))
	}
	<-done
}

func TestRegistry_SeparatesOwnersAndSeeds(t *testing.T) {
	r := NewRegistry([]domain.Draft{draft("Seeded", "x", domain.Web)})

	alice := r.For("alice")
	bob := r.For("bob")
	require.NotSame(t, alice, bob)
	assert.Same(t, alice, r.For("alice"))

	alice.Create(draft("Only alice", "x", domain.Desktop))
	assert.Equal(t, 2, alice.Len())
	assert.Equal(t, 1, bob.Len())

	owners, stats := r.Totals()
	assert.Equal(t, 2, owners)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, []string{"alice", "bob"}, r.Owners())

	assert.True(t, r.Drop("alice"))
	assert.False(t, r.Drop("alice"))
	assert.Equal(t, 1, r.For("alice").Len())
}
