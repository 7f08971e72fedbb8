// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/jazbelrose/mylg-sync/models"
)

// ProjectService serves the projects API of the stub server.
type ProjectService interface {
	ListProjects(ctx context.Context, ownerID string) ([]models.Project, error)
	GetProject(ctx context.Context, projectID string) (models.Project, error)
	UpdateProject(ctx context.Context, projectID string, patch models.Project) (models.Project, error)
	ReplaceTimeline(ctx context.Context, projectID string, events []models.TimelineEvent) (models.Project, error)
}

// ProjectServiceWrapper defines middleware composition for ProjectService.
// Implementations wrap an existing ProjectService to add behavior such as
// logging or validating.
type ProjectServiceWrapper interface {
	Wrap(ProjectService) ProjectService // returns a decorated ProjectService applying additional behavior
}
