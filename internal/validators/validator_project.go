// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jazbelrose/mylg-sync/models"
)

const (
	FieldProjectID      = "project_id"
	FieldTitle          = "title"
	FieldFinishLine     = "finish_line"
	FieldTotalBudget    = "total_budget"
	FieldTimelineEvents = "timeline_events"
	FieldAnyField       = "any_field"
)

const dateLayout = time.DateOnly

type ProjectValidator struct {
}

func NewProjectValidator() Validator {
	return &ProjectValidator{}
}

func (v *ProjectValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Project:
		return v.validateProject(ctx, value, fields...)
	case *models.Project:
		return v.validateProject(ctx, *value, fields...)

	case models.TimelineReplaceRequest:
		return v.validateEvents(value.TimelineEvents)
	case *models.TimelineReplaceRequest:
		return v.validateEvents(value.TimelineEvents)
	case []models.TimelineEvent:
		return v.validateEvents(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *ProjectValidator) validateProject(_ context.Context, p models.Project, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProjectID, FieldTitle, FieldFinishLine, FieldTotalBudget, FieldTimelineEvents}
	}

	for _, f := range fields {
		switch f {
		case FieldProjectID:
			if strings.TrimSpace(p.ProjectID) == "" {
				return ErrInvalidProjectID
			}
		case FieldTitle:
			if title, ok := p.Title.Get(); ok && strings.TrimSpace(title) == "" {
				return ErrEmptyTitle
			}
		case FieldFinishLine:
			if date, ok := p.FinishLine.Get(); ok && !isDate(date) {
				return ErrInvalidFinishLine
			}
		case FieldTotalBudget:
			if budget, ok := p.TotalBudget.Get(); ok && budget < 0 {
				return ErrNegativeBudget
			}
		case FieldTimelineEvents:
			if events, ok := p.TimelineEvents.Get(); ok {
				if err := v.validateEvents(events); err != nil {
					return err
				}
			}
		case FieldAnyField:
			if !hasAnyField(p) {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEvents requires every event to carry a unique id. Callers assign
// missing ids before sending.
func (v *ProjectValidator) validateEvents(events []models.TimelineEvent) error {
	seen := make(map[string]struct{}, len(events))
	for i, e := range events {
		switch {
		case strings.TrimSpace(e.ID) == "":
			return fmt.Errorf("validation error at index %d: %w", i, ErrEmptyEventID)
		case e.Date != "" && !isDate(e.Date):
			return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidEventDate)
		case e.Hours < 0:
			return fmt.Errorf("validation error at index %d: %w", i, ErrNegativeEventHours)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("validation error at index %d: %w", i, ErrDuplicateEventID)
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}

func isDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func hasAnyField(p models.Project) bool {
	return p.OwnerID.Present() ||
		p.Title.Present() ||
		p.Status.Present() ||
		p.Description.Present() ||
		p.Color.Present() ||
		p.FinishLine.Present() ||
		p.TotalBudget.Present() ||
		p.Team.Present() ||
		p.TimelineEvents.Present() ||
		p.Thumbnails.Present()
}
