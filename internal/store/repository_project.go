// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jazbelrose/mylg-sync/internal/reconcile"
	"github.com/jazbelrose/mylg-sync/models"
)

type memoryProjectRepository struct {
	mu       sync.RWMutex
	projects map[string]models.Project
	now      func() time.Time
}

// NewMemoryProjectRepository returns a [ProjectRepository] holding seed.
// Seed records without an id are skipped.
func NewMemoryProjectRepository(seed ...models.Project) ProjectRepository {
	r := &memoryProjectRepository{
		projects: make(map[string]models.Project, len(seed)),
		now:      time.Now,
	}
	for _, p := range seed {
		if p.ProjectID != "" {
			r.projects[p.ProjectID] = p
		}
	}
	return r
}

func (r *memoryProjectRepository) List(_ context.Context, ownerID string) ([]models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Project, 0, len(r.projects))
	for _, p := range r.projects {
		if ownerID != "" && p.OwnerID.OrElse("") != ownerID {
			continue
		}
		out = append(out, p.Summary())
	}
	slices.SortFunc(out, func(a, b models.Project) int {
		return strings.Compare(a.ProjectID, b.ProjectID)
	})
	return out, nil
}

func (r *memoryProjectRepository) Get(_ context.Context, projectID string) (models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.projects[projectID]
	if !ok {
		return models.Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
	}
	return p, nil
}

func (r *memoryProjectRepository) Save(_ context.Context, project models.Project) error {
	if project.ProjectID == "" {
		return ErrInvalidProject
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects[project.ProjectID] = project
	return nil
}

func (r *memoryProjectRepository) Patch(_ context.Context, projectID string, patch models.Project) (models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.projects[projectID]
	if !ok {
		return models.Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
	}

	patch.ProjectID = projectID
	patch.UpdatedAt = models.Set(r.now().UTC())
	merged := reconcile.Project(patch, &cur)
	r.projects[projectID] = merged
	return merged, nil
}

func (r *memoryProjectRepository) ReplaceTimeline(_ context.Context, projectID string, events []models.TimelineEvent) (models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.projects[projectID]
	if !ok {
		return models.Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
	}

	if events == nil {
		events = []models.TimelineEvent{}
	}
	cur.TimelineEvents = models.Set(slices.Clone(events))
	cur.UpdatedAt = models.Set(r.now().UTC())
	r.projects[projectID] = cur
	return cur, nil
}
