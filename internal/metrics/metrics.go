// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of a client session.
//
// Every [Metrics] value owns its registry, so several sessions (and tests)
// can coexist in one process without duplicate registration panics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mylg_sync"

// Request outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeRateLimited = "rate_limited"
	OutcomeHTTPError   = "http_error"
	OutcomeNetwork     = "network_error"
	OutcomeAuth        = "auth_not_ready"
)

// Detail cache results.
const (
	CacheHit      = "hit"
	CacheMiss     = "miss"
	CacheFetch    = "fetch"
	CacheShared   = "shared"
	CacheFailure  = "failure"
	CacheEviction = "eviction"
)

// Metrics groups the collectors used by the request client, the detail cache
// and the worker pool.
type Metrics struct {
	registry *prometheus.Registry

	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Retries         prometheus.Counter
	RateLimited     prometheus.Counter
	DetailCache     *prometheus.CounterVec
	PoolRunning     prometheus.Gauge
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Remote API requests by method and outcome",
		}, []string{"method", "outcome"}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Remote API request latency including retries",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method"}),
		Retries: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_retries_total",
			Help:      "Retried request attempts",
		}),
		RateLimited: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the client-side rate limiter",
		}),
		DetailCache: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "detail_cache_total",
			Help:      "Detail cache lookups by result",
		}, []string{"result"}),
		PoolRunning: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pool_running_tasks",
			Help:      "Tasks currently running in the network pool",
		}),
	}
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRequest records one finished request.
func (m *Metrics) ObserveRequest(method, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(method, outcome).Inc()
	m.RequestDuration.WithLabelValues(method).Observe(seconds)
}

// ObserveRetry counts one retried attempt.
func (m *Metrics) ObserveRetry() {
	if m == nil {
		return
	}
	m.Retries.Inc()
}

// ObserveRateLimited counts one request rejected by the local limiter.
func (m *Metrics) ObserveRateLimited() {
	if m == nil {
		return
	}
	m.RateLimited.Inc()
	m.Requests.WithLabelValues("", OutcomeRateLimited).Inc()
}

// ObserveCache counts one detail cache event.
func (m *Metrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.DetailCache.WithLabelValues(result).Inc()
}
