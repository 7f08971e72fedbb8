// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_UnmarshalDistinguishesAbsentFromNull(t *testing.T) {
	var p Project
	err := json.Unmarshal([]byte(`{"projectId":"p1","title":"Roof","description":null}`), &p)
	require.NoError(t, err)

	assert.Equal(t, "p1", p.ProjectID)

	title, ok := p.Title.Get()
	assert.True(t, ok)
	assert.Equal(t, "Roof", title)

	assert.True(t, p.Description.Present())
	assert.True(t, p.Description.IsNull())

	// поле, которого не было в payload, должно остаться absent
	assert.False(t, p.Status.Present())
	assert.False(t, p.TimelineEvents.Present())
}

func TestField_MarshalOmitsAbsentKeepsNull(t *testing.T) {
	p := Project{
		ProjectID:   "p1",
		Title:       Set("Roof"),
		Description: Null[string](),
		Team:        Set([]TeamMember{}),
	}

	b, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &raw))

	assert.JSONEq(t, `"Roof"`, string(raw["title"]))
	assert.JSONEq(t, `null`, string(raw["description"]))
	assert.JSONEq(t, `[]`, string(raw["team"]))
	assert.NotContains(t, raw, "status")
	assert.NotContains(t, raw, "timelineEvents")
}

func TestField_OrElse(t *testing.T) {
	assert.Equal(t, "x", Absent[string]().OrElse("x"))
	assert.Equal(t, "x", Null[string]().OrElse("x"))
	assert.Equal(t, "y", Set("y").OrElse("x"))
}

func TestProject_SummaryDropsCollections(t *testing.T) {
	p := Project{
		ProjectID:      "p1",
		Title:          Set("Roof"),
		Description:    Set("long text"),
		TimelineEvents: Set([]TimelineEvent{{ID: "e1"}}),
		Thumbnails:     Set([]string{"a.png"}),
	}

	s := p.Summary()
	assert.Equal(t, "p1", s.ProjectID)
	assert.True(t, s.Title.IsSet())
	assert.False(t, s.Description.Present())
	assert.False(t, s.TimelineEvents.Present())
	assert.False(t, s.Thumbnails.Present())
}

func TestTimelineEvent_WithIdentityCopies(t *testing.T) {
	e := TimelineEvent{Description: "kickoff"}
	withID := e.WithIdentity("e1")

	assert.Equal(t, "", e.Identity())
	assert.Equal(t, "e1", withID.Identity())
	assert.Equal(t, "kickoff", withID.Description)
}
