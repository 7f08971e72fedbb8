// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"time"

	"github.com/jazbelrose/mylg-sync/internal/logger"
)

// Audit event kinds.
const (
	AuditRateLimited       = "client_rate_limited"
	AuditUnauthorized      = "unauthorized"
	AuditServerRateLimited = "server_rate_limited"
)

// AuditEvent describes a security-relevant request outcome.
type AuditEvent struct {
	Kind   string
	Method string
	Path   string
	Status int
	Time   time.Time
}

type logAuditSink struct {
	logger *logger.Logger
}

// NewLogAuditSink returns an [AuditSink] writing each event as a structured
// log line tagged event=security_audit.
func NewLogAuditSink(log *logger.Logger) AuditSink {
	return &logAuditSink{logger: log}
}

func (s *logAuditSink) Audit(ctx context.Context, e AuditEvent) {
	logger.FromContext(ctx, s.logger).Warn().
		Str("event", "security_audit").
		Str("kind", e.Kind).
		Str("method", e.Method).
		Str("path", e.Path).
		Int("status", e.Status).
		Time("at", e.Time).
		Msg("security audit")
}
