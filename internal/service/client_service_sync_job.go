// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/jazbelrose/mylg-sync/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type listRefreshJob struct {
	projects ClientProjectService
	ownerID  string
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewListRefreshJob creates a job that calls projects.FetchList for ownerID
// on a ticker. If interval is zero or negative it defaults to 5 minutes. The
// job is idle until Run is called.
func NewListRefreshJob(projects ClientProjectService, ownerID string, interval time.Duration, log *logger.Logger) ClientSyncJob {
	if interval <= 0 {
		interval = defaultSyncInterval
	}
	return &listRefreshJob{
		projects: projects,
		ownerID:  ownerID,
		interval: interval,
		logger:   log.Component("list-refresh-job"),
	}
}

// Run stops any previously running loop, then launches a background
// goroutine that refreshes the list every interval. The goroutine exits when
// ctx is cancelled or Stop is called.
func (j *listRefreshJob) Run(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := j.projects.FetchList(jobCtx, j.ownerID); err != nil {
					j.logger.Warn().Err(err).Str("owner_id", j.ownerID).Msg("scheduled list refresh failed")
				}
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited.
// Safe to call when the job is not running.
func (j *listRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
