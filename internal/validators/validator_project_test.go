// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/jazbelrose/mylg-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProject() models.Project {
	return models.Project{
		ProjectID:   "p1",
		Title:       models.Set("Roof"),
		FinishLine:  models.Set("2026-05-01"),
		TotalBudget: models.Set(1200.5),
		TimelineEvents: models.Set([]models.TimelineEvent{
			{ID: "e1", Date: "2026-04-01", Hours: 2},
			{ID: "e2"},
		}),
	}
}

func TestNewProjectValidator(t *testing.T) {
	require.NotNil(t, NewProjectValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewProjectValidator()
	ctx := context.Background()
	p := validProject()

	assert.NoError(t, v.Validate(ctx, p))
	assert.NoError(t, v.Validate(ctx, &p))
	assert.NoError(t, v.Validate(ctx, models.TimelineReplaceRequest{}))
	assert.NoError(t, v.Validate(ctx, &models.TimelineReplaceRequest{}))
	assert.NoError(t, v.Validate(ctx, []models.TimelineEvent{{ID: "x"}}))
	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
}

func TestValidate_Project(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *models.Project)
		fields  []string
		wantErr error
	}{
		{
			name:   "valid project",
			mutate: func(*models.Project) {},
		},
		{
			name:    "missing id",
			mutate:  func(p *models.Project) { p.ProjectID = " " },
			wantErr: ErrInvalidProjectID,
		},
		{
			name:    "blank title",
			mutate:  func(p *models.Project) { p.Title = models.Set("  ") },
			wantErr: ErrEmptyTitle,
		},
		{
			name:   "null title passes",
			mutate: func(p *models.Project) { p.Title = models.Null[string]() },
		},
		{
			name:    "bad finish line",
			mutate:  func(p *models.Project) { p.FinishLine = models.Set("01/05/2026") },
			wantErr: ErrInvalidFinishLine,
		},
		{
			name:    "negative budget",
			mutate:  func(p *models.Project) { p.TotalBudget = models.Set(-1.0) },
			wantErr: ErrNegativeBudget,
		},
		{
			name: "event without id",
			mutate: func(p *models.Project) {
				p.TimelineEvents = models.Set([]models.TimelineEvent{{Description: "new"}})
			},
			wantErr: ErrEmptyEventID,
		},
		{
			name: "duplicate event id",
			mutate: func(p *models.Project) {
				p.TimelineEvents = models.Set([]models.TimelineEvent{{ID: "a"}, {ID: "a"}})
			},
			wantErr: ErrDuplicateEventID,
		},
		{
			name: "bad event date",
			mutate: func(p *models.Project) {
				p.TimelineEvents = models.Set([]models.TimelineEvent{{ID: "a", Date: "tomorrow"}})
			},
			wantErr: ErrInvalidEventDate,
		},
		{
			name: "negative hours",
			mutate: func(p *models.Project) {
				p.TimelineEvents = models.Set([]models.TimelineEvent{{ID: "a", Hours: -3}})
			},
			wantErr: ErrNegativeEventHours,
		},
		{
			name:   "only requested fields are checked",
			mutate: func(p *models.Project) { p.ProjectID = "" },
			fields: []string{FieldTitle},
		},
		{
			name:    "empty patch",
			mutate:  func(p *models.Project) { *p = models.Project{ProjectID: "p1"} },
			fields:  []string{FieldAnyField},
			wantErr: ErrNoFieldsToUpdate,
		},
		{
			name:    "unknown field",
			mutate:  func(*models.Project) {},
			fields:  []string{"nope"},
			wantErr: ErrUnknownField,
		},
	}

	v := NewProjectValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProject()
			tt.mutate(&p)

			err := v.Validate(context.Background(), p, tt.fields...)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_AbsentFieldsPass(t *testing.T) {
	err := NewProjectValidator().Validate(context.Background(), models.Project{ProjectID: "p1"})

	assert.NoError(t, err)
}
