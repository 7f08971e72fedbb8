// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jazbelrose/mylg-sync/models"
)

type httpProjectsAPI struct {
	client *RequestClient
}

// NewProjectsAPI returns the HTTP implementation of [ProjectsAPI].
func NewProjectsAPI(client *RequestClient) ProjectsAPI {
	return &httpProjectsAPI{client: client}
}

func projectPath(projectID string) string {
	return "/projects/" + url.PathEscape(projectID)
}

// ListProjects implements [ProjectsAPI]. It GETs /projects?owner=ownerID and
// accepts either a bare array or a {"projects": [...]} envelope.
func (a *httpProjectsAPI) ListProjects(ctx context.Context, ownerID string) ([]models.Project, error) {
	raw, err := a.client.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   "/projects",
		Query:  url.Values{"owner": []string{ownerID}},
	})
	if err != nil {
		return nil, fmt.Errorf("list projects request: %w", err)
	}

	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) {
		var items []models.Project
		if err = json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("decode list projects response: %w", err)
		}
		return items, nil
	}

	var envelope models.ProjectList
	if err = json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode list projects response: %w", err)
	}
	if envelope.Projects == nil {
		return []models.Project{}, nil
	}
	return envelope.Projects, nil
}

// GetProject implements [ProjectsAPI]. It GETs /projects/{projectID}. A
// degraded {} body yields a record carrying only the identifier, which merges
// as "nothing new" over any cached version.
func (a *httpProjectsAPI) GetProject(ctx context.Context, projectID string) (models.Project, error) {
	raw, err := a.client.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   projectPath(projectID),
	})
	if err != nil {
		return models.Project{}, fmt.Errorf("get project request: %w", err)
	}

	return decodeProject(raw, projectID)
}

// UpdateProject implements [ProjectsAPI]. It PATCHes /projects/{projectID}
// with the present fields of patch.
func (a *httpProjectsAPI) UpdateProject(ctx context.Context, projectID string, patch models.Project) (models.Project, error) {
	patch.ProjectID = projectID

	raw, err := a.client.Do(ctx, Request{
		Method: http.MethodPatch,
		Path:   projectPath(projectID),
		Body:   patch,
	})
	if err != nil {
		return models.Project{}, fmt.Errorf("update project request: %w", err)
	}

	return decodeProject(raw, projectID)
}

// ReplaceTimeline implements [ProjectsAPI]. It PUTs the full event list to
// /projects/{projectID}/events.
func (a *httpProjectsAPI) ReplaceTimeline(ctx context.Context, projectID string, events []models.TimelineEvent) error {
	if events == nil {
		events = []models.TimelineEvent{}
	}

	_, err := a.client.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   projectPath(projectID) + "/events",
		Body:   models.TimelineReplaceRequest{TimelineEvents: events},
	})
	if err != nil {
		return fmt.Errorf("replace timeline request: %w", err)
	}
	return nil
}

func decodeProject(raw json.RawMessage, projectID string) (models.Project, error) {
	var p models.Project
	if err := json.Unmarshal(raw, &p); err != nil {
		return models.Project{}, fmt.Errorf("decode project response: %w", err)
	}
	if p.ProjectID == "" {
		p.ProjectID = projectID
	}
	return p, nil
}
