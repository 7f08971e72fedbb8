// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers bounds concurrent network work and runs background jobs.
//
// [Pool] caps how many tasks execute at once and starts queued tasks in
// submission order. [Workers] aggregates long-running background jobs such as
// the periodic list refresh so they can be started and stopped together.
package workers

import "context"

// Worker is a background job owned by the client session.
//
// Run starts the job and returns immediately; the job keeps running until ctx
// is cancelled or Stop is called. Stop blocks until the job has exited.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    // start background processing
//	}
//
//	func (w *MyWorker) Stop() {}
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

// Gauge receives the number of tasks currently running in a [Pool].
// prometheus.Gauge satisfies it.
type Gauge interface {
	Set(float64)
}
