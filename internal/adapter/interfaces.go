// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the sync client and
// the remote projects API.
//
// [RequestClient] wraps every outbound call with bearer and CSRF token
// attachment, a per-path sliding-window rate limit and a bounded fixed-delay
// retry. [ProjectsAPI] is the typed view of the four project endpoints built
// on top of it and is what the service layer depends on.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401/403, [ErrServerRateLimited] for 429).
package adapter

import (
	"context"

	"github.com/jazbelrose/mylg-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/projects_api_mock.go -package=mock

// ProjectsAPI is the remote projects API.
type ProjectsAPI interface {
	// ListProjects returns the summary view of every project owned by
	// ownerID. Summaries carry neither the team nor the timeline.
	ListProjects(ctx context.Context, ownerID string) ([]models.Project, error)

	// GetProject returns the full record of a project.
	GetProject(ctx context.Context, projectID string) (models.Project, error)

	// UpdateProject sends the present fields of patch and returns the echo
	// of the server. The echo may be partial.
	UpdateProject(ctx context.Context, projectID string, patch models.Project) (models.Project, error)

	// ReplaceTimeline replaces the whole timeline of a project.
	ReplaceTimeline(ctx context.Context, projectID string, events []models.TimelineEvent) error
}

// TokenProvider yields the bearer token for outbound requests. An empty
// token or an error means the token is not ready yet.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// CSRFProvider yields the CSRF token attached to state-changing requests.
type CSRFProvider interface {
	CSRFToken(ctx context.Context) (string, error)
}

// AuditSink receives security-relevant request events.
type AuditSink interface {
	Audit(ctx context.Context, event AuditEvent)
}
