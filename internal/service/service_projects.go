// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/jazbelrose/mylg-sync/internal/logger"
	"github.com/jazbelrose/mylg-sync/internal/store"
	"github.com/jazbelrose/mylg-sync/models"
)

type projectService struct {
	projectRepository store.ProjectRepository

	logger *logger.Logger
}

func NewProjectService(projectRepository store.ProjectRepository, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		logger:            logger,
	}
}

func (p *projectService) ListProjects(ctx context.Context, ownerID string) ([]models.Project, error) {
	return p.projectRepository.List(ctx, ownerID)
}

func (p *projectService) GetProject(ctx context.Context, projectID string) (models.Project, error) {
	return p.projectRepository.Get(ctx, projectID)
}

func (p *projectService) UpdateProject(ctx context.Context, projectID string, patch models.Project) (models.Project, error) {
	return p.projectRepository.Patch(ctx, projectID, patch)
}

func (p *projectService) ReplaceTimeline(ctx context.Context, projectID string, events []models.TimelineEvent) (models.Project, error) {
	return p.projectRepository.ReplaceTimeline(ctx, projectID, events)
}
