package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/domain"
	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/store"
	"github.com/GoSim-25-26J-441/it-inventory/internal/logging"
)

const (
	outcomeOK       = "ok"
	outcomeInvalid  = "invalid"
	outcomeNotFound = "not_found"
	outcomeNoop     = "noop"
)

// ListResult is one list-view snapshot.
type ListResult struct {
	Projects   []domain.Project
	Stats      domain.Stats
	EmptyState string
}

// ProjectService is the form boundary in front of each owner's Store:
// it validates and normalizes drafts, then logs and counts every operation.
type ProjectService struct {
	stores  *store.Registry
	log     *logrus.Logger
	metrics *Metrics
}

// NewProjectService creates a new project service
func NewProjectService(stores *store.Registry, log *logrus.Logger, metrics *Metrics) *ProjectService {
	return &ProjectService{
		stores:  stores,
		log:     log,
		metrics: metrics,
	}
}

// Create validates the draft and adds it to the owner's store.
func (s *ProjectService) Create(ctx context.Context, ownerID string, d domain.Draft) (domain.Project, error) {
	lg := logging.FromContext(ctx, s.log).With("owner", ownerID)

	d = d.Normalize()
	if err := d.Validate(); err != nil {
		s.metrics.record("create", outcomeInvalid)
		lg.LogWarn("create", err.Error())
		return domain.Project{}, err
	}

	p := s.stores.For(ownerID).Create(d)
	s.metrics.record("create", outcomeOK)
	lg.LogInfof("create", "created project id=%s type=%s", p.ID, p.DevelopmentType)
	return p, nil
}

// Update validates the draft and replaces the project. Unknown IDs yield domain.ErrNotFound.
func (s *ProjectService) Update(ctx context.Context, ownerID, id string, d domain.Draft) (domain.Project, error) {
	lg := logging.FromContext(ctx, s.log).With("owner", ownerID)

	d = d.Normalize()
	if err := d.Validate(); err != nil {
		s.metrics.record("update", outcomeInvalid)
		lg.LogWarn("update", err.Error())
		return domain.Project{}, err
	}

	p, err := s.stores.For(ownerID).Update(id, d)
	if errors.Is(err, domain.ErrNotFound) {
		s.metrics.record("update", outcomeNotFound)
		lg.LogWarn("update", "project not found id="+id)
		return domain.Project{}, err
	}
	if err != nil {
		return domain.Project{}, err
	}

	s.metrics.record("update", outcomeOK)
	lg.LogInfof("update", "updated project id=%s", p.ID)
	return p, nil
}

// Delete removes the project and reports whether it existed.
func (s *ProjectService) Delete(ctx context.Context, ownerID, id string) bool {
	lg := logging.FromContext(ctx, s.log).With("owner", ownerID)

	deleted := s.stores.For(ownerID).Delete(id)
	if deleted {
		s.metrics.record("delete", outcomeOK)
		lg.LogInfof("delete", "deleted project id=%s", id)
	} else {
		s.metrics.record("delete", outcomeNoop)
		lg.LogInfof("delete", "nothing to delete id=%s", id)
	}
	return deleted
}

func (s *ProjectService) Get(ctx context.Context, ownerID, id string) (domain.Project, error) {
	p, err := s.stores.For(ownerID).Get(id)
	if err != nil {
		s.metrics.record("get", outcomeNotFound)
		return domain.Project{}, err
	}
	s.metrics.record("get", outcomeOK)
	return p, nil
}

// Find runs the list query and returns it with the dashboard stats and empty-state hint.
func (s *ProjectService) Find(ctx context.Context, ownerID string, q domain.Query) ListResult {
	items, stats := s.stores.For(ownerID).Snapshot(q)
	s.metrics.record("find", outcomeOK)
	return ListResult{
		Projects:   items,
		Stats:      stats,
		EmptyState: domain.EmptyState(stats.Total, len(items)),
	}
}

func (s *ProjectService) Stats(ctx context.Context, ownerID string) domain.Stats {
	return s.stores.For(ownerID).Stats()
}

// Forget drops the owner's store, e.g. after sign-out.
func (s *ProjectService) Forget(ctx context.Context, ownerID string) {
	if s.stores.Drop(ownerID) {
		logging.FromContext(ctx, s.log).With("owner", ownerID).LogInfo("forget", "dropped in-memory store")
	}
}
