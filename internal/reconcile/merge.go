// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package reconcile combines a freshly fetched record with a previously known
// version of the same record.
//
// The remote API returns full or partial representations depending on the
// endpoint, so merging is field-wise: whatever the fresh record provides wins
// (including an explicit null or an explicitly empty collection) and whatever
// it omits is kept from the fallback.
package reconcile

import (
	"slices"

	"github.com/jazbelrose/mylg-sync/models"
)

// Field returns fresh when it was provided (set or null) and fallback
// otherwise.
func Field[T any](fresh, fallback models.Field[T]) models.Field[T] {
	if fresh.Present() {
		return fresh
	}
	return fallback
}

// Collection applies the override-if-present policy to a collection field:
// a provided collection, even an empty one, replaces the fallback entirely;
// an omitted one keeps the fallback. The winning slice is cloned so merged
// records never share backing arrays with their inputs.
func Collection[T any](fresh, fallback models.Field[[]T]) models.Field[[]T] {
	winner := Field(fresh, fallback)
	items, ok := winner.Get()
	if !ok {
		return winner
	}
	return models.Set(slices.Clone(items))
}

// Project merges fresh over fallback. A nil fallback returns fresh unchanged.
func Project(fresh models.Project, fallback *models.Project) models.Project {
	if fallback == nil {
		return fresh
	}

	merged := *fallback
	if fresh.ProjectID != "" {
		merged.ProjectID = fresh.ProjectID
	}

	merged.OwnerID = Field(fresh.OwnerID, fallback.OwnerID)
	merged.Title = Field(fresh.Title, fallback.Title)
	merged.Status = Field(fresh.Status, fallback.Status)
	merged.Description = Field(fresh.Description, fallback.Description)
	merged.Color = Field(fresh.Color, fallback.Color)
	merged.FinishLine = Field(fresh.FinishLine, fallback.FinishLine)
	merged.TotalBudget = Field(fresh.TotalBudget, fallback.TotalBudget)
	merged.UpdatedAt = Field(fresh.UpdatedAt, fallback.UpdatedAt)

	merged.Team = Collection(fresh.Team, fallback.Team)
	merged.TimelineEvents = Collection(fresh.TimelineEvents, fallback.TimelineEvents)
	merged.Thumbnails = Collection(fresh.Thumbnails, fallback.Thumbnails)

	return merged
}

// ProjectComplete reports whether a project record carries the attributes
// only the detail endpoint returns. A record missing either the team or the
// timeline needs hydration.
func ProjectComplete(p models.Project) bool {
	return p.Team.Present() && p.TimelineEvents.Present()
}
