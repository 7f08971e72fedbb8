// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/jazbelrose/mylg-sync/models"

// Repositories groups the stub server repositories.
type Repositories struct {
	ProjectRepository ProjectRepository
}

// NewRepositories returns in-memory repositories seeded with projects.
func NewRepositories(seed ...models.Project) *Repositories {
	return &Repositories{
		ProjectRepository: NewMemoryProjectRepository(seed...),
	}
}
