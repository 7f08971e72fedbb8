// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = New()
		_ = New()
	})
}

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest("GET", OutcomeSuccess, 0.2)
	m.ObserveRequest("GET", OutcomeSuccess, 0.3)
	m.ObserveRequest("PATCH", OutcomeHTTPError, 0.1)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("GET", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("PATCH", OutcomeHTTPError)))
}

func TestObserveRateLimitedAndRetry(t *testing.T) {
	m := New()

	m.ObserveRateLimited()
	m.ObserveRetry()
	m.ObserveRetry()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimited))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Retries))
}

func TestObserveCache(t *testing.T) {
	m := New()

	m.ObserveCache(CacheHit)
	m.ObserveCache(CacheMiss)
	m.ObserveCache(CacheHit)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DetailCache.WithLabelValues(CacheHit)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DetailCache.WithLabelValues(CacheMiss)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", OutcomeSuccess, 1)
		m.ObserveRetry()
		m.ObserveRateLimited()
		m.ObserveCache(CacheHit)
	})
}

func TestRegistry_Gathers(t *testing.T) {
	m := New()
	m.PoolRunning.Set(2)

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
