package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/goalplanner/internal/kv"
	"github.com/templui/goalplanner/internal/model"
)

func TestImporter_Import(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)}
	goals := newGoalService(t, kv.NewMemoryStore(), clock)
	imp := NewImporter(goals, time.UTC)

	source := []byte(`---
title: Learn Rust
category: Personal
priority: high
due: 2024-01-07
---
Read *the book*, then build something.
`)

	goal, err := imp.Import(context.Background(), source)
	require.NoError(t, err)

	assert.Equal(t, "Learn Rust", goal.Title)
	assert.Equal(t, model.CategoryPersonal, goal.Category)
	assert.Equal(t, model.PriorityHigh, goal.Priority)
	assert.Equal(t, "Read *the book*, then build something.", goal.Description)
	require.NotNil(t, goal.DueDate)
	assert.True(t, time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC).Equal(*goal.DueDate))
	assert.Len(t, goals.Goals(), 1)
}

func TestImporter_ParseDefaults(t *testing.T) {
	imp := NewImporter(nil, time.UTC)

	in, err := imp.Parse([]byte("---\ntitle: Save\ncategory: finance\ncompleted: true\n---\n"))
	require.NoError(t, err)
	assert.Equal(t, model.PriorityMedium, in.Priority)
	assert.True(t, in.Completed)
	assert.Nil(t, in.DueDate)
	assert.Empty(t, in.Description)
}

func TestImporter_ParseRejects(t *testing.T) {
	imp := NewImporter(nil, time.UTC)

	_, err := imp.Parse([]byte("no front matter at all"))
	assert.ErrorContains(t, err, "title is required")

	_, err = imp.Parse([]byte("---\ntitle: x\ncategory: hobbies\n---\n"))
	assert.ErrorContains(t, err, "invalid category")

	_, err = imp.Parse([]byte("---\ntitle: x\ncategory: health\ndue: next tuesday\n---\n"))
	assert.ErrorContains(t, err, "invalid due date")
}
