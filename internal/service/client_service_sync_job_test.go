// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jazbelrose/mylg-sync/internal/logger"
	"github.com/jazbelrose/mylg-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyProjects считает вызовы FetchList; остальные методы не используются.
type spyProjects struct {
	ClientProjectService
	calls atomic.Int64
	owner atomic.Value
	err   error
}

func (s *spyProjects) FetchList(_ context.Context, ownerID string) ([]models.Project, error) {
	s.calls.Add(1)
	s.owner.Store(ownerID)
	return nil, s.err
}

func TestNewListRefreshJob_ReturnsInterface(t *testing.T) {
	job := NewListRefreshJob(&spyProjects{}, "u1", time.Second, logger.Nop())
	require.NotNil(t, job)

	var _ ClientSyncJob = job
}

func TestListRefreshJob_Run_CallsFetchList(t *testing.T) {
	spy := &spyProjects{}
	job := NewListRefreshJob(spy, "u1", 10*time.Millisecond, logger.Nop())

	// Интервал 10ms, за 55ms должно быть ~5 тиков
	job.Run(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "FetchList должен быть вызван несколько раз, вызвано: %d", got)
	assert.Equal(t, "u1", spy.owner.Load())
}

func TestListRefreshJob_ErrorsDoNotStopLoop(t *testing.T) {
	spy := &spyProjects{err: errors.New("offline")}
	job := NewListRefreshJob(spy, "u1", 10*time.Millisecond, logger.Nop())

	job.Run(context.Background())
	time.Sleep(45 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(2))
}

func TestListRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyProjects{}
	job := NewListRefreshJob(spy, "u1", 10*time.Millisecond, logger.Nop())

	job.Run(context.Background())
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestListRefreshJob_Stop_BeforeRun_NoPanic(t *testing.T) {
	job := NewListRefreshJob(&spyProjects{}, "u1", time.Second, logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
}

func TestListRefreshJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewListRefreshJob(&spyProjects{}, "u1", 10*time.Millisecond, logger.Nop())

	job.Run(context.Background())
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestListRefreshJob_DefaultInterval(t *testing.T) {
	spy := &spyProjects{}
	job := NewListRefreshJob(spy, "u1", 0, logger.Nop()).(*listRefreshJob)

	// interval <= 0 → дефолт 5 минут, за 20ms вызовов быть не должно
	assert.Equal(t, defaultSyncInterval, job.interval)
	job.Run(context.Background())
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestListRefreshJob_ContextCancelStopsLoop(t *testing.T) {
	spy := &spyProjects{}
	job := NewListRefreshJob(spy, "u1", 10*time.Millisecond, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Run(ctx)
	time.Sleep(25 * time.Millisecond)
	cancel()
	time.Sleep(15 * time.Millisecond)
	callsAfterCancel := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Equal(t, callsAfterCancel, spy.calls.Load())
}

func TestListRefreshJob_Restart_StopsPrevious(t *testing.T) {
	spy := &spyProjects{}
	job := NewListRefreshJob(spy, "u1", 10*time.Millisecond, logger.Nop())

	job.Run(context.Background())
	time.Sleep(30 * time.Millisecond)
	callsBefore := spy.calls.Load()
	assert.Greater(t, callsBefore, int64(0))

	// повторный Run внутри вызывает Stop()
	job.Run(context.Background())
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore, "второй Run должен продолжить генерировать вызовы")
}
