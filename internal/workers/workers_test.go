// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run and Stop were called.
type mockWorker struct {
	runCount  int
	stopCount int
}

func (m *mockWorker) Run(context.Context) {
	m.runCount++
}

func (m *mockWorker) Stop() {
	m.stopCount++
}

// orderWorker records its id into a shared slice on Run and Stop.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run(context.Context) {
	*o.order = append(*o.order, o.id)
}

func (o *orderWorker) Stop() {
	*o.order = append(*o.order, -o.id)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, 1, w.runCount, "worker[%d]", i)
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	assert.NotPanics(t, func() {
		ws.Run(context.Background())
		ws.Stop()
	})
}

func TestWorkers_NilEntriesSkipped(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(nil, w, nil)

	ws.Run(context.Background())
	ws.Stop()

	assert.Equal(t, 1, w.runCount)
	assert.Equal(t, 1, w.stopCount)
}

func TestWorkers_RunAndStopOrder(t *testing.T) {
	order := []int{}
	ws := NewWorkers(
		&orderWorker{id: 1, order: &order},
		&orderWorker{id: 2, order: &order},
		&orderWorker{id: 3, order: &order},
	)

	ws.Run(context.Background())
	ws.Stop()

	// запуск в порядке регистрации, остановка в обратном
	assert.Equal(t, []int{1, 2, 3, -3, -2, -1}, order)
}
