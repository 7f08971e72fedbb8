// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingGauge struct {
	mu     sync.Mutex
	values []float64
}

func (g *recordingGauge) Set(v float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.values = append(g.values, v)
}

func TestNewPool_DefaultSize(t *testing.T) {
	assert.Equal(t, DefaultPoolSize, NewPool(0).Size())
	assert.Equal(t, DefaultPoolSize, NewPool(-5).Size())
	assert.Equal(t, 7, NewPool(7).Size())
}

func TestPool_BoundsConcurrency(t *testing.T) {
	p := NewPool(3)

	var (
		running atomic.Int64
		maxSeen atomic.Int64
		wg      sync.WaitGroup
	)

	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := p.Schedule(context.Background(), func(context.Context) error {
				n := running.Add(1)
				for {
					m := maxSeen.Load()
					if n <= m || maxSeen.CompareAndSwap(m, n) {
						break
					}
				}
				time.Sleep(20 * time.Millisecond)
				running.Add(-1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, maxSeen.Load(), int64(3))
	assert.Equal(t, int64(3), maxSeen.Load())
	assert.Equal(t, 3, p.Stats().Peak)
	assert.Equal(t, 0, p.Stats().Running)
}

func TestPool_StartsQueuedTasksInSubmissionOrder(t *testing.T) {
	p := NewPool(1)
	release := make(chan struct{})
	blockerStarted := make(chan struct{})

	go func() {
		_ = p.Schedule(context.Background(), func(context.Context) error {
			close(blockerStarted)
			<-release
			return nil
		})
	}()
	<-blockerStarted

	var (
		mu    sync.Mutex
		order []int
		wg    sync.WaitGroup
	)
	for i := range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Schedule(context.Background(), func(context.Context) error {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				return nil
			})
		}()
		// даём горутине встать в очередь семафора
		time.Sleep(10 * time.Millisecond)
	}

	close(release)
	wg.Wait()

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestPool_FailureIsolated(t *testing.T) {
	p := NewPool(2)
	boom := errors.New("boom")

	errFail := p.Schedule(context.Background(), func(context.Context) error { return boom })
	errOK := p.Schedule(context.Background(), func(context.Context) error { return nil })

	assert.ErrorIs(t, errFail, boom)
	assert.NoError(t, errOK)
}

func TestPool_PanicRecovered(t *testing.T) {
	p := NewPool(1)

	err := p.Schedule(context.Background(), func(context.Context) error {
		panic("kaboom")
	})
	require.ErrorIs(t, err, ErrTaskPanicked)

	// слот должен быть освобождён
	err = p.Schedule(context.Background(), func(context.Context) error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, 0, p.Stats().Running)
}

func TestPool_ContextCancelledWhileWaiting(t *testing.T) {
	p := NewPool(1)
	release := make(chan struct{})
	started := make(chan struct{})

	go func() {
		_ = p.Schedule(context.Background(), func(context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	ran := false
	err := p.Schedule(ctx, func(context.Context) error {
		ran = true
		return nil
	})

	assert.ErrorIs(t, err, ErrAcquireSlot)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, ran)
}

func TestSubmit_ReturnsValue(t *testing.T) {
	p := NewPool(2)

	v, err := Submit(context.Background(), p, func(context.Context) (string, error) {
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestSubmit_ErrorReturnsZero(t *testing.T) {
	p := NewPool(2)
	boom := errors.New("boom")

	v, err := Submit(context.Background(), p, func(context.Context) (int, error) {
		return 42, boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, v)
}

func TestPool_GaugeReportsRunning(t *testing.T) {
	g := &recordingGauge{}
	p := NewPool(2, WithGauge(g))

	_ = p.Schedule(context.Background(), func(context.Context) error { return nil })

	g.mu.Lock()
	defer g.mu.Unlock()
	assert.Equal(t, []float64{1, 0}, g.values)
}
