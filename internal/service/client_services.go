// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/jazbelrose/mylg-sync/internal/adapter"
	"github.com/jazbelrose/mylg-sync/internal/config"
	"github.com/jazbelrose/mylg-sync/internal/logger"
	"github.com/jazbelrose/mylg-sync/internal/metrics"
	"github.com/jazbelrose/mylg-sync/internal/store"
	"github.com/jazbelrose/mylg-sync/internal/workers"
)

// ClientServices is the service set of one signed-in session.
type ClientServices struct {
	ProjectService ClientProjectService
	SyncJob        ClientSyncJob
	Pool           *workers.Pool
}

func NewClientServices(
	cfg *config.ClientConfig,
	storages *store.ClientStorages,
	api adapter.ProjectsAPI,
	m *metrics.Metrics,
	log *logger.Logger,
) (*ClientServices, error) {
	var poolOpts []workers.PoolOption
	if m != nil {
		poolOpts = append(poolOpts, workers.WithGauge(m.PoolRunning))
	}
	pool := workers.NewPool(cfg.Workers.Concurrency, poolOpts...)

	projects, err := NewClientProjectService(api, storages.TTL, pool, *cfg, m, log)
	if err != nil {
		return nil, fmt.Errorf("create project service: %w", err)
	}

	var job ClientSyncJob
	if cfg.App.OwnerID != "" {
		job = NewListRefreshJob(projects, cfg.App.OwnerID, cfg.Workers.SyncInterval, log)
	}

	return &ClientServices{
		ProjectService: projects,
		SyncJob:        job,
		Pool:           pool,
	}, nil
}

// Close stops the background job and tears down the project caches.
func (s *ClientServices) Close() {
	if s.SyncJob != nil {
		s.SyncJob.Stop()
	}
	s.ProjectService.Close()
}
