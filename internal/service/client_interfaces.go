// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/jazbelrose/mylg-sync/internal/workers"
	"github.com/jazbelrose/mylg-sync/models"
)

// ClientProjectService is the client-side entry point to project data. It
// keeps project lists in the TTL cache and full records in the detail cache
// and propagates local edits to the remote API.
type ClientProjectService interface {
	// FetchList loads the summaries of every project owned by ownerID, stores
	// them in the list cache and starts background hydration of the detail
	// records. Summaries are also merged into detail records that are already
	// cached. Returns the remote error, if any.
	FetchList(ctx context.Context, ownerID string) ([]models.Project, error)

	// CachedList returns the list stored by the last FetchList for ownerID
	// while it is still fresh. The second value is false on a miss.
	CachedList(ctx context.Context, ownerID string) ([]models.Project, bool)

	// FetchDetail returns the full record of a project through the detail
	// cache. It never fails: when the fetch fails the last known record (or
	// an empty one) is returned and [ClientProjectService.Freshness] reports
	// the error.
	FetchDetail(ctx context.Context, projectID string) models.Project

	// FetchDetailWithFallback is FetchDetail with a caller-known partial
	// record, typically a list summary, used as the merge base.
	FetchDetailWithFallback(ctx context.Context, projectID string, fallback *models.Project) models.Project

	// UpdateFields sends the present fields of patch to the remote API and
	// merges the echo into the cached record. Concurrent local updates are
	// serialized by revision.
	UpdateFields(ctx context.Context, projectID string, patch models.Project) (models.Project, error)

	// UpdateSubCollection assigns missing timeline event ids, drops
	// duplicates, replaces the remote timeline and updates the cached record.
	UpdateSubCollection(ctx context.Context, projectID string, events []models.TimelineEvent) error

	// Freshness reports whether the cached record of a project is fresh or
	// stale because its last fetch failed. The error is the failure.
	Freshness(projectID string) (Freshness, error)

	// Close waits for background hydration to finish and drops every cached
	// record. The service must not be used afterwards.
	Close()
}

// ClientSyncJob periodically refreshes the project list of one owner.
type ClientSyncJob interface {
	workers.Worker
}
