// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// DefaultPoolSize is the concurrency bound used when none is configured.
const DefaultPoolSize = 3

// Pool runs tasks with at most Size of them executing at once.
//
// Callers that find the pool full wait in FIFO order, so tasks start in
// submission order; completion order is unconstrained. A failing or
// panicking task only affects its own caller. The pool keeps no record of
// tasks once they finish.
type Pool struct {
	sem  *semaphore.Weighted
	size int64

	running atomic.Int64
	peak    atomic.Int64

	gauge Gauge
}

// PoolOption configures a [Pool].
type PoolOption func(*Pool)

// WithGauge reports the running task count to g after every change.
func WithGauge(g Gauge) PoolOption {
	return func(p *Pool) {
		p.gauge = g
	}
}

// NewPool returns a pool admitting size concurrent tasks. A non-positive
// size falls back to [DefaultPoolSize].
func NewPool(size int, opts ...PoolOption) *Pool {
	if size <= 0 {
		size = DefaultPoolSize
	}

	p := &Pool{
		sem:  semaphore.NewWeighted(int64(size)),
		size: int64(size),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Size returns the concurrency bound.
func (p *Pool) Size() int {
	return int(p.size)
}

// Stats is a point-in-time view of pool occupancy.
type Stats struct {
	Running int
	Peak    int
}

// Stats returns the current and the highest observed running counts.
func (p *Pool) Stats() Stats {
	return Stats{
		Running: int(p.running.Load()),
		Peak:    int(p.peak.Load()),
	}
}

// Schedule waits for a free slot, runs task on the calling goroutine and
// returns its error.
//
// ctx only bounds the wait for a slot: once started, the task runs to
// completion and observes ctx on its own. A panic inside task is recovered
// and reported as [ErrTaskPanicked].
func (p *Pool) Schedule(ctx context.Context, task func(ctx context.Context) error) (err error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("%w: %w", ErrAcquireSlot, err)
	}

	p.enter()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
		}
		p.leave()
		p.sem.Release(1)
	}()

	return task(ctx)
}

// Submit schedules task on p and returns its value.
func Submit[T any](ctx context.Context, p *Pool, task func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := p.Schedule(ctx, func(ctx context.Context) error {
		v, err := task(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}

func (p *Pool) enter() {
	n := p.running.Add(1)
	for {
		peak := p.peak.Load()
		if n <= peak || p.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	p.report(n)
}

func (p *Pool) leave() {
	p.report(p.running.Add(-1))
}

func (p *Pool) report(n int64) {
	if p.gauge != nil {
		p.gauge.Set(float64(n))
	}
}
