// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jazbelrose/mylg-sync/internal/logger"
	"github.com/jazbelrose/mylg-sync/internal/utils"
	"github.com/jazbelrose/mylg-sync/models"
)

const maxBodyBytes = 1 << 20

// listProjects serves GET /projects?owner=<id> with the owner's summaries
// wrapped in a {"projects": [...]} envelope.
func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("owner")

	projects, err := h.services.ProjectService.ListProjects(r.Context(), owner)
	if err != nil {
		h.writeError(w, r, err, statusFromError(err))
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}

	h.writeJSON(w, r, models.ProjectList{Projects: projects}, http.StatusOK)
}

// getProject serves GET /projects/{projectID} with the full record.
func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.services.ProjectService.GetProject(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		h.writeError(w, r, err, statusFromError(err))
		return
	}

	h.writeJSON(w, r, project, http.StatusOK)
}

// updateProject serves PATCH /projects/{projectID}. Only fields present in
// the body are applied; the updated record is echoed back.
func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	var patch models.Project
	if err := decodeBody(r, &patch); err != nil {
		h.writeError(w, r, err, http.StatusBadRequest)
		return
	}

	project, err := h.services.ProjectService.UpdateProject(r.Context(), chi.URLParam(r, "projectID"), patch)
	if err != nil {
		h.writeError(w, r, err, statusFromError(err))
		return
	}

	h.writeJSON(w, r, project, http.StatusOK)
}

// replaceTimeline serves PUT /projects/{projectID}/events. The body is either
// {"timelineEvents": [...]} or a bare array; the list replaces the stored one.
func (h *Handler) replaceTimeline(w http.ResponseWriter, r *http.Request) {
	events, err := decodeTimeline(r)
	if err != nil {
		h.writeError(w, r, err, http.StatusBadRequest)
		return
	}

	project, err := h.services.ProjectService.ReplaceTimeline(r.Context(), chi.URLParam(r, "projectID"), events)
	if err != nil {
		h.writeError(w, r, err, statusFromError(err))
		return
	}

	h.writeJSON(w, r, project, http.StatusOK)
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	return nil
}

func decodeTimeline(r *http.Request) ([]models.TimelineEvent, error) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}

	raw = bytes.TrimSpace(raw)
	if bytes.HasPrefix(raw, []byte("[")) {
		var events []models.TimelineEvent
		if err = json.Unmarshal(raw, &events); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
		}
		return events, nil
	}

	var req models.TimelineReplaceRequest
	if err = json.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	if req.TimelineEvents == nil {
		return nil, fmt.Errorf("%w: timelineEvents is required", ErrInvalidRequestBody)
	}
	return req.TimelineEvents, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, status int) {
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	h.writeJSON(w, r, errorResponse{Error: err.Error()}, status)
}
