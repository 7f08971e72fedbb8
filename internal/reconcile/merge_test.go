// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import (
	"testing"

	"github.com/jazbelrose/mylg-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_NilFallbackReturnsFresh(t *testing.T) {
	fresh := models.Project{ProjectID: "p1", Title: models.Set("Roof")}

	got := Project(fresh, nil)

	assert.Equal(t, fresh, got)
}

func TestProject_FieldPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		fresh    models.Field[string]
		fallback models.Field[string]
		want     models.Field[string]
	}{
		{
			name:     "fresh value wins",
			fresh:    models.Set("active"),
			fallback: models.Set("planning"),
			want:     models.Set("active"),
		},
		{
			name:     "omitted field keeps fallback",
			fresh:    models.Absent[string](),
			fallback: models.Set("planning"),
			want:     models.Set("planning"),
		},
		{
			name:     "explicit null clears fallback",
			fresh:    models.Null[string](),
			fallback: models.Set("planning"),
			want:     models.Null[string](),
		},
		{
			name:     "both absent stays absent",
			fresh:    models.Absent[string](),
			fallback: models.Absent[string](),
			want:     models.Absent[string](),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fresh := models.Project{ProjectID: "p1", Status: tt.fresh}
			fallback := models.Project{ProjectID: "p1", Status: tt.fallback}

			got := Project(fresh, &fallback)

			assert.Equal(t, tt.want, got.Status)
		})
	}
}

func TestProject_CollectionOverrideLaw(t *testing.T) {
	fallback := models.Project{
		ProjectID:      "p1",
		TimelineEvents: models.Set([]models.TimelineEvent{{ID: "x"}, {ID: "y"}}),
	}

	t.Run("explicit empty replaces", func(t *testing.T) {
		fresh := models.Project{ProjectID: "p1", TimelineEvents: models.Set([]models.TimelineEvent{})}

		got := Project(fresh, &fallback)

		events, ok := got.TimelineEvents.Get()
		require.True(t, ok)
		assert.Empty(t, events)
	})

	t.Run("omitted keeps fallback", func(t *testing.T) {
		fresh := models.Project{ProjectID: "p1"}

		got := Project(fresh, &fallback)

		events, ok := got.TimelineEvents.Get()
		require.True(t, ok)
		assert.Equal(t, []models.TimelineEvent{{ID: "x"}, {ID: "y"}}, events)
	})

	t.Run("non-empty replaces wholesale", func(t *testing.T) {
		fresh := models.Project{ProjectID: "p1", TimelineEvents: models.Set([]models.TimelineEvent{{ID: "z"}})}

		got := Project(fresh, &fallback)

		events, _ := got.TimelineEvents.Get()
		assert.Equal(t, []models.TimelineEvent{{ID: "z"}}, events)
	})
}

func TestProject_MergedCollectionDoesNotAliasInput(t *testing.T) {
	fallbackEvents := []models.TimelineEvent{{ID: "e1"}}
	fallback := models.Project{ProjectID: "p1", TimelineEvents: models.Set(fallbackEvents)}

	got := Project(models.Project{ProjectID: "p1"}, &fallback)
	events, _ := got.TimelineEvents.Get()
	events[0].ID = "mutated"

	assert.Equal(t, "e1", fallbackEvents[0].ID)
}

func TestProject_TeamMergedWithoutTimeline(t *testing.T) {
	team := []models.TeamMember{{UserID: "u1", Role: "lead"}}
	fresh := models.Project{ProjectID: "p1", Team: models.Set(team)}
	fallback := models.Project{
		ProjectID:      "p1",
		Title:          models.Set("Roof"),
		TimelineEvents: models.Set([]models.TimelineEvent{{ID: "e1"}}),
	}

	got := Project(fresh, &fallback)

	assert.Equal(t, "p1", got.ProjectID)
	assert.Equal(t, "Roof", got.Title.OrElse(""))
	assert.Equal(t, team, got.Team.OrElse(nil))
	assert.Equal(t, []models.TimelineEvent{{ID: "e1"}}, got.TimelineEvents.OrElse(nil))
	assert.True(t, ProjectComplete(got))
}

func TestProjectComplete(t *testing.T) {
	assert.False(t, ProjectComplete(models.Project{ProjectID: "p1"}))
	assert.False(t, ProjectComplete(models.Project{
		ProjectID: "p1",
		Team:      models.Set([]models.TeamMember{}),
	}))
	assert.True(t, ProjectComplete(models.Project{
		ProjectID:      "p1",
		Team:           models.Set([]models.TeamMember{}),
		TimelineEvents: models.Null[[]models.TimelineEvent](),
	}))
}
