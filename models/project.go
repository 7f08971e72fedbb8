// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Project is the client-side record of a collaboration project as returned by
// the remote API. Only ProjectID is always present: list endpoints return a
// summary view while the detail endpoint returns the full record, so every
// other attribute is a [Field] that can be absent because it was not fetched.
type Project struct {
	// ProjectID is the stable string key of the project.
	ProjectID string `json:"projectId"`

	// OwnerID identifies the user the project belongs to.
	OwnerID Field[string] `json:"ownerId,omitzero"`

	// Title is the display name of the project.
	Title Field[string] `json:"title,omitzero"`

	// Status is the free-form workflow status (e.g. "planning", "active").
	Status Field[string] `json:"status,omitzero"`

	// Description is the long-form project description.
	Description Field[string] `json:"description,omitzero"`

	// Color is the accent color used for the project card.
	Color Field[string] `json:"color,omitzero"`

	// FinishLine is the planned completion date in YYYY-MM-DD form.
	FinishLine Field[string] `json:"finishline,omitzero"`

	// TotalBudget is the approved budget amount.
	TotalBudget Field[float64] `json:"totalBudget,omitzero"`

	// UpdatedAt is the server-side modification time.
	UpdatedAt Field[time.Time] `json:"updatedAt,omitzero"`

	// Team lists the members working on the project.
	Team Field[[]TeamMember] `json:"team,omitzero"`

	// TimelineEvents is the project timeline.
	TimelineEvents Field[[]TimelineEvent] `json:"timelineEvents,omitzero"`

	// Thumbnails holds storage keys of gallery thumbnails.
	Thumbnails Field[[]string] `json:"thumbnails,omitzero"`
}

// Summary returns the partial view of the project that list endpoints
// expose. Collections are left absent.
func (p Project) Summary() Project {
	return Project{
		ProjectID:   p.ProjectID,
		OwnerID:     p.OwnerID,
		Title:       p.Title,
		Status:      p.Status,
		Color:       p.Color,
		FinishLine:  p.FinishLine,
		TotalBudget: p.TotalBudget,
		UpdatedAt:   p.UpdatedAt,
	}
}

// TeamMember is a user assigned to a project.
type TeamMember struct {
	UserID string `json:"userId"`
	Role   string `json:"role,omitempty"`
}

// TimelineEvent is a single entry of a project timeline. ID may be empty when
// the event was created by a client that did not assign one.
type TimelineEvent struct {
	ID          string  `json:"id,omitempty"`
	Date        string  `json:"date,omitempty"`
	Description string  `json:"description,omitempty"`
	Hours       float64 `json:"hours,omitempty"`
}

// Identity returns the event identifier.
func (e TimelineEvent) Identity() string {
	return e.ID
}

// WithIdentity returns a copy of the event carrying id.
func (e TimelineEvent) WithIdentity(id string) TimelineEvent {
	e.ID = id
	return e
}

// ProjectList is the envelope some list endpoints wrap their items in.
type ProjectList struct {
	Projects []Project `json:"projects"`
}

// TimelineReplaceRequest is the body of a timeline sub-collection PUT.
type TimelineReplaceRequest struct {
	TimelineEvents []TimelineEvent `json:"timelineEvents"`
}
