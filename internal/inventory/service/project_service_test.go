package service

import (
	"context"
	"io"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/domain"
	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/store"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func setupService(t *testing.T) (*ProjectService, *Metrics, *store.Registry) {
	t.Helper()
	reg := store.NewRegistry(nil)
	m := NewMetrics(prometheus.NewRegistry())
	return NewProjectService(reg, quietLogger(), m), m, reg
}

func validDraft(name string) domain.Draft {
	return domain.Draft{
		Name:            name,
		Purpose:         "Sistema de Inventario",
		DevelopmentType: domain.Web,
		Language:        "Go",
		DatabaseType:    "PostgreSQL",
	}
}

func TestProjectService_CreateValidatesAndNormalizes(t *testing.T) {
	svc, m, reg := setupService(t)
	ctx := context.Background()

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := svc.Create(ctx, "alice", domain.Draft{Name: "x"})
		require.ErrorIs(t, err, domain.ErrInvalidDraft)
		assert.Equal(t, 0, reg.For("alice").Len())
		assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("create", outcomeInvalid)))
	})

	t.Run("trims and stores", func(t *testing.T) {
		d := validDraft("  Portal  ")
		p, err := svc.Create(ctx, "alice", d)
		require.NoError(t, err)
		assert.Equal(t, "Portal", p.Name)
		assert.Equal(t, 1, reg.For("alice").Len())
		assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("create", outcomeOK)))
	})
}

func TestProjectService_ConnectionsAtTheBoundary(t *testing.T) {
	svc, _, reg := setupService(t)
	ctx := context.Background()

	t.Run("blank name and duplicate id are rejected", func(t *testing.T) {
		d := validDraft("ERP")
		d.Connections = []domain.Connection{{ID: "dup", Name: ""}, {ID: "dup", Name: "CRM"}}

		_, err := svc.Create(ctx, "alice", d)
		require.ErrorIs(t, err, domain.ErrInvalidDraft)
		assert.Equal(t, 0, reg.For("alice").Len())
	})

	t.Run("missing ids are generated", func(t *testing.T) {
		d := validDraft("ERP")
		d.Connections = []domain.Connection{{Name: "CRM"}, {Name: "BI"}}

		p, err := svc.Create(ctx, "alice", d)
		require.NoError(t, err)
		require.Len(t, p.Connections, 2)
		assert.NotEmpty(t, p.Connections[0].ID)
		assert.NotEqual(t, p.Connections[0].ID, p.Connections[1].ID)
	})

	t.Run("update enforces the same rules", func(t *testing.T) {
		p, err := svc.Create(ctx, "alice", validDraft("Portal"))
		require.NoError(t, err)

		d := validDraft("Portal")
		d.Connections = []domain.Connection{{ID: "x", Name: "A"}, {ID: "x", Name: "B"}}
		_, err = svc.Update(ctx, "alice", p.ID, d)
		require.ErrorIs(t, err, domain.ErrInvalidDraft)

		got, err := svc.Get(ctx, "alice", p.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Connections)
	})
}

func TestProjectService_UpdateAndDelete(t *testing.T) {
	svc, m, _ := setupService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, "alice", validDraft("A"))
	require.NoError(t, err)

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := svc.Update(ctx, "alice", "missing", validDraft("B"))
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("update", outcomeNotFound)))
	})

	t.Run("other owners cannot see the project", func(t *testing.T) {
		_, err := svc.Get(ctx, "bob", p.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("update replaces fields", func(t *testing.T) {
		got, err := svc.Update(ctx, "alice", p.ID, validDraft("B"))
		require.NoError(t, err)
		assert.Equal(t, "B", got.Name)
		assert.Equal(t, p.CreatedAt, got.CreatedAt)
	})

	t.Run("delete twice", func(t *testing.T) {
		assert.True(t, svc.Delete(ctx, "alice", p.ID))
		assert.False(t, svc.Delete(ctx, "alice", p.ID))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("delete", outcomeNoop)))
	})
}

func TestProjectService_FindEmptyStates(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	res := svc.Find(ctx, "alice", domain.Query{DevelopmentType: domain.TypeAll})
	assert.Equal(t, domain.EmptyNoProjects, res.EmptyState)
	assert.Empty(t, res.Projects)

	_, err := svc.Create(ctx, "alice", validDraft("Portal"))
	require.NoError(t, err)

	res = svc.Find(ctx, "alice", domain.Query{SearchText: "zzz"})
	assert.Equal(t, domain.EmptyNoMatches, res.EmptyState)
	assert.Equal(t, 1, res.Stats.Total)

	res = svc.Find(ctx, "alice", domain.Query{SearchText: "portal"})
	assert.Equal(t, "", res.EmptyState)
	assert.Len(t, res.Projects, 1)
}

func TestReporter_Run(t *testing.T) {
	reg := store.NewRegistry(nil)
	reg.For("alice").Create(validDraft("A"))
	reg.For("bob").Create(domain.Draft{Name: "B", DevelopmentType: domain.Legacy})

	m := NewMetrics(prometheus.NewRegistry())
	r := NewReporter(reg, quietLogger(), m)

	owners, stats := r.Run()
	assert.Equal(t, 2, owners)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Projects))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ByType.WithLabelValues(domain.TypeLegacy)))
}

func TestReporter_StartRejectsBadSchedule(t *testing.T) {
	r := NewReporter(store.NewRegistry(nil), quietLogger(), nil)
	assert.Error(t, r.Start("not a schedule"))
}
