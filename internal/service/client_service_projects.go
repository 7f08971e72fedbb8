// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/jazbelrose/mylg-sync/internal/adapter"
	"github.com/jazbelrose/mylg-sync/internal/cache"
	"github.com/jazbelrose/mylg-sync/internal/config"
	"github.com/jazbelrose/mylg-sync/internal/identity"
	"github.com/jazbelrose/mylg-sync/internal/logger"
	"github.com/jazbelrose/mylg-sync/internal/metrics"
	"github.com/jazbelrose/mylg-sync/internal/reconcile"
	"github.com/jazbelrose/mylg-sync/internal/store"
	"github.com/jazbelrose/mylg-sync/internal/utils"
	"github.com/jazbelrose/mylg-sync/internal/validators"
	"github.com/jazbelrose/mylg-sync/internal/workers"
	"github.com/jazbelrose/mylg-sync/models"
)

const listKeyPrefix = "projects:list:"

// Freshness describes a cached project record.
type Freshness string

const (
	// FreshnessUnknown means nothing is cached for the project.
	FreshnessUnknown Freshness = "unknown"
	// FreshnessFresh means the record reflects the last successful fetch or
	// local update.
	FreshnessFresh Freshness = "fresh"
	// FreshnessStale means the last fetch failed.
	FreshnessStale Freshness = "stale"
)

type clientProjectService struct {
	api       adapter.ProjectsAPI
	lists     *store.TTLCache
	details   *cache.DetailCache[models.Project]
	ids       identity.Generator
	validator validators.Validator
	limiter   *rate.Limiter

	listTTL        time.Duration
	repairTimeline bool

	logger *logger.Logger

	// bgMu orders background wg.Add calls against Close
	bgMu     sync.Mutex
	bgCtx    context.Context
	bgCancel context.CancelFunc
	wg       sync.WaitGroup
}

// NewClientProjectService wires the project caches around api. Detail
// fetches run on pool.
func NewClientProjectService(
	api adapter.ProjectsAPI,
	lists *store.TTLCache,
	pool *workers.Pool,
	cfg config.ClientConfig,
	m *metrics.Metrics,
	log *logger.Logger,
) (ClientProjectService, error) {
	log = log.Component("project-service")

	rps := rate.Limit(cfg.Workers.HydrationRPS)
	if cfg.Workers.HydrationRPS <= 0 {
		rps = rate.Inf
	}

	bgCtx, cancel := context.WithCancel(context.Background())
	s := &clientProjectService{
		api:            api,
		lists:          lists,
		ids:            utils.NewUUIDGenerator(),
		validator:      validators.NewProjectValidator(),
		limiter:        rate.NewLimiter(rps, 1),
		listTTL:        cfg.Storage.ListTTL,
		repairTimeline: cfg.Cache.RepairTimeline,
		logger:         log,
		bgCtx:          bgCtx,
		bgCancel:       cancel,
	}

	details, err := cache.New(cache.Config[models.Project]{
		Fetch:    s.fetchProject,
		Merge:    reconcile.Project,
		Complete: reconcile.ProjectComplete,
		Capacity: cfg.Cache.DetailCapacity,
		Pool:     pool,
		Metrics:  m,
		Logger:   log,
	})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("create detail cache: %w", err)
	}
	s.details = details

	return s, nil
}

func listKey(ownerID string) string {
	return listKeyPrefix + ownerID
}

func (s *clientProjectService) FetchList(ctx context.Context, ownerID string) ([]models.Project, error) {
	log := logger.FromContext(ctx, s.logger).With().
		Str("func", "clientProjectService.FetchList").
		Str("owner_id", ownerID).
		Logger()

	list, err := s.api.ListProjects(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("fetch project list: %w", mapAdapterError(err))
	}

	if err = s.lists.Set(ctx, listKey(ownerID), list, s.listTTL); err != nil {
		log.Warn().Err(err).Msg("failed to cache project list")
	}

	for _, summary := range list {
		s.mergeSummary(summary)
	}
	s.hydrate(list)

	log.Debug().Int("count", len(list)).Msg("project list fetched")
	return list, nil
}

// mergeSummary refreshes the scalar fields of an already cached record.
// Summaries carry no collections, so cached ones survive the merge.
func (s *clientProjectService) mergeSummary(summary models.Project) {
	for {
		e, ok := s.details.Snapshot(summary.ProjectID)
		if !ok {
			return
		}
		if _, swapped := s.details.CompareAndSwap(summary.ProjectID, e.Revision, reconcile.Project(summary, &e.Value)); swapped {
			return
		}
	}
}

// hydrate loads detail records for list in the background, paced by the
// hydration limiter. Records that are already complete are served from the
// cache without a request.
func (s *clientProjectService) hydrate(list []models.Project) {
	if len(list) == 0 {
		return
	}

	s.bgMu.Lock()
	defer s.bgMu.Unlock()
	if s.bgCtx.Err() != nil {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for _, summary := range list {
			if err := s.limiter.Wait(s.bgCtx); err != nil {
				return
			}
			s.wg.Add(1)
			go func() {
				defer s.wg.Done()
				s.FetchDetailWithFallback(s.bgCtx, summary.ProjectID, &summary)
			}()
		}
	}()
}

func (s *clientProjectService) CachedList(ctx context.Context, ownerID string) ([]models.Project, bool) {
	var list []models.Project
	if !s.lists.Get(ctx, listKey(ownerID), &list) {
		return nil, false
	}
	return list, true
}

func (s *clientProjectService) FetchDetail(ctx context.Context, projectID string) models.Project {
	return s.FetchDetailWithFallback(ctx, projectID, nil)
}

func (s *clientProjectService) FetchDetailWithFallback(ctx context.Context, projectID string, fallback *models.Project) models.Project {
	return s.details.Get(ctx, projectID, fallback)
}

// fetchProject is the detail cache's fetch. It runs once per shared fetch,
// so timeline repair happens here: every caller waiting on the fetch sees
// the same event ids and the corrected timeline is written back once.
func (s *clientProjectService) fetchProject(ctx context.Context, projectID string) (models.Project, error) {
	p, err := s.api.GetProject(ctx, projectID)
	if err != nil || !s.repairTimeline {
		return p, err
	}

	events, ok := p.TimelineEvents.Get()
	if !ok {
		return p, nil
	}
	res := identity.EnsureIDs(events, s.ids)
	if !res.Changed {
		return p, nil
	}

	log := logger.FromContext(ctx, s.logger).With().
		Str("func", "clientProjectService.fetchProject").
		Str("project_id", projectID).
		Logger()
	log.Info().Int("before", len(events)).Int("after", len(res.Items)).Msg("repairing timeline event ids")

	p.TimelineEvents = models.Set(res.Items)
	s.writeBackTimeline(projectID, res.Items)
	return p, nil
}

// writeBackTimeline persists a repaired timeline in the background. Nothing
// is sent once the service is closed.
func (s *clientProjectService) writeBackTimeline(projectID string, events []models.TimelineEvent) {
	s.bgMu.Lock()
	defer s.bgMu.Unlock()
	if s.bgCtx.Err() != nil {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.api.ReplaceTimeline(s.bgCtx, projectID, events); err != nil {
			s.logger.Warn().Err(err).Str("project_id", projectID).Msg("failed to persist repaired timeline")
		}
	}()
}

func (s *clientProjectService) UpdateFields(ctx context.Context, projectID string, patch models.Project) (models.Project, error) {
	if projectID == "" {
		return models.Project{}, ErrInvalidDataProvided
	}
	patch.ProjectID = projectID
	err := s.validator.Validate(ctx, patch,
		validators.FieldAnyField,
		validators.FieldTitle,
		validators.FieldFinishLine,
		validators.FieldTotalBudget,
		validators.FieldTimelineEvents,
	)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	echo, err := s.api.UpdateProject(ctx, projectID, patch)
	if err != nil {
		return models.Project{}, fmt.Errorf("update project %s: %w", projectID, mapAdapterError(err))
	}

	// the echo may be partial: the patch fills in what it leaves out
	merged := s.storeLocal(projectID, reconcile.Project(echo, &patch))
	s.patchCachedList(ctx, merged)
	return merged, nil
}

func (s *clientProjectService) UpdateSubCollection(ctx context.Context, projectID string, events []models.TimelineEvent) error {
	if projectID == "" {
		return ErrInvalidDataProvided
	}

	res := identity.EnsureIDs(events, s.ids)
	if err := s.validator.Validate(ctx, res.Items); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.api.ReplaceTimeline(ctx, projectID, res.Items); err != nil {
		return fmt.Errorf("replace timeline of project %s: %w", projectID, mapAdapterError(err))
	}

	s.storeLocal(projectID, models.Project{
		ProjectID:      projectID,
		TimelineEvents: models.Set(res.Items),
	})
	return nil
}

// storeLocal merges fresh over the cached record of projectID and stores
// the result, retrying when another writer got in between.
func (s *clientProjectService) storeLocal(projectID string, fresh models.Project) models.Project {
	for {
		e, ok := s.details.Snapshot(projectID)
		var base *models.Project
		if ok {
			base = &e.Value
		}
		merged := reconcile.Project(fresh, base)
		if _, swapped := s.details.CompareAndSwap(projectID, e.Revision, merged); swapped {
			return merged
		}
	}
}

// patchCachedList overlays the summary of p onto the cached list of its
// owner, keeping the list's remaining lifetime.
func (s *clientProjectService) patchCachedList(ctx context.Context, p models.Project) {
	ownerID, ok := p.OwnerID.Get()
	if !ok {
		return
	}

	key := listKey(ownerID)
	age, ok := s.lists.Age(ctx, key)
	if !ok {
		return
	}
	remaining := s.listTTL - age
	if remaining < time.Millisecond {
		return
	}

	var list []models.Project
	if !s.lists.Get(ctx, key, &list) {
		return
	}
	for i := range list {
		if list[i].ProjectID == p.ProjectID {
			list[i] = reconcile.Project(p.Summary(), &list[i])
		}
	}
	if err := s.lists.Set(ctx, key, list, remaining); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientProjectService.patchCachedList").Msg("failed to update cached list")
	}
}

func (s *clientProjectService) Freshness(projectID string) (Freshness, error) {
	if err := s.details.LastError(projectID); err != nil {
		return FreshnessStale, err
	}
	if _, ok := s.details.Snapshot(projectID); ok {
		return FreshnessFresh, nil
	}
	return FreshnessUnknown, nil
}

func (s *clientProjectService) Close() {
	s.bgMu.Lock()
	s.bgCancel()
	s.bgMu.Unlock()
	s.wg.Wait()
	s.details.Purge()
}
