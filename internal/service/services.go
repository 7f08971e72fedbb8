// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/jazbelrose/mylg-sync/internal/logger"
	"github.com/jazbelrose/mylg-sync/internal/store"
)

type Services struct {
	ProjectService ProjectService
}

func NewServices(repositories *store.Repositories, logger *logger.Logger) *Services {
	projects := NewProjectService(repositories.ProjectRepository, logger)

	return &Services{
		ProjectService: NewProjectValidationService().Wrap(projects),
	}
}
