// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds local persistence: the key-value substrates backing
// the TTL cache on the client and the in-memory project repository of the
// stub API server.
package store

import (
	"context"

	"github.com/jazbelrose/mylg-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Substrate is a persistent string key-value store. Keys are shared by every
// user of the substrate; callers namespace them by convention.
type Substrate interface {
	// GetItem returns the stored value and true, or "" and false when the
	// key is absent.
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error
	Close() error
}

// ProjectRepository stores the authoritative project records served by the
// stub API server.
type ProjectRepository interface {
	// List returns the summary view of every project owned by ownerID,
	// ordered by identifier. An empty ownerID lists every project.
	List(ctx context.Context, ownerID string) ([]models.Project, error)
	Get(ctx context.Context, projectID string) (models.Project, error)
	// Save inserts or replaces a whole record.
	Save(ctx context.Context, project models.Project) error
	// Patch overlays the present fields of patch and returns the result.
	Patch(ctx context.Context, projectID string, patch models.Project) (models.Project, error)
	ReplaceTimeline(ctx context.Context, projectID string, events []models.TimelineEvent) (models.Project, error)
}
