// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/jazbelrose/mylg-sync/internal/validators"
	"github.com/jazbelrose/mylg-sync/models"
)

type ProjectValidationService struct {
	inner     ProjectService
	validator validators.Validator
}

func NewProjectValidationService() ProjectServiceWrapper {
	return &ProjectValidationService{
		validator: validators.NewProjectValidator(),
	}
}

func (v *ProjectValidationService) ListProjects(ctx context.Context, ownerID string) ([]models.Project, error) {
	return v.inner.ListProjects(ctx, ownerID)
}

func (v *ProjectValidationService) GetProject(ctx context.Context, projectID string) (models.Project, error) {
	if projectID == "" {
		return models.Project{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidProjectID)
	}
	return v.inner.GetProject(ctx, projectID)
}

func (v *ProjectValidationService) UpdateProject(ctx context.Context, projectID string, patch models.Project) (models.Project, error) {
	// the id in the path is authoritative
	patch.ProjectID = projectID
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Project{}, fmt.Errorf("%w: error during project validation before update: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, patch, validators.FieldAnyField); err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateProject(ctx, projectID, patch)
}

func (v *ProjectValidationService) ReplaceTimeline(ctx context.Context, projectID string, events []models.TimelineEvent) (models.Project, error) {
	if projectID == "" {
		return models.Project{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidProjectID)
	}
	if err := v.validator.Validate(ctx, events); err != nil {
		return models.Project{}, fmt.Errorf("%w: error during timeline validation: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ReplaceTimeline(ctx, projectID, events)
}

func (v *ProjectValidationService) Wrap(wrapper ProjectService) ProjectService {
	v.inner = wrapper
	return v
}
