package client_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicenotes/internal/client"
	"voicenotes/internal/domain/entities"
)

func sampleNotes() []*entities.Note {
	base := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	return []*entities.Note{
		{ID: 2, Title: "Ideas", Content: "book a flight", CreatedAt: base.Add(time.Minute)},
		{ID: 1, Title: "Groceries", Content: "milk eggs bread", CreatedAt: base},
	}
}

func TestDeriveViewFiltering(t *testing.T) {
	notes := sampleNotes()

	tests := []struct {
		name    string
		query   string
		wantIDs []int64
	}{
		{"empty query returns all in order", "", []int64{2, 1}},
		{"match in content", "flight", []int64{2}},
		{"match in other note", "milk", []int64{1}},
		{"match in title", "grocer", []int64{1}},
		{"case insensitive", "FLIGHT", []int64{2}},
		{"query is trimmed", "  flight  ", []int64{2}},
		{"no match", "meeting", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := client.DeriveView(notes, tt.query, client.OrderDesc)

			ids := make([]int64, 0, len(view))
			for _, note := range view {
				ids = append(ids, note.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestDeriveViewSorting(t *testing.T) {
	notes := sampleNotes()

	desc := client.DeriveView(notes, "", client.OrderDesc)
	require.Len(t, desc, 2)
	assert.Equal(t, int64(2), desc[0].ID)
	assert.Equal(t, int64(1), desc[1].ID)

	asc := client.DeriveView(notes, "", client.OrderAsc)
	require.Len(t, asc, 2)
	assert.Equal(t, int64(1), asc[0].ID)
	assert.Equal(t, int64(2), asc[1].ID)
}

func TestDeriveViewTieBreakByID(t *testing.T) {
	ts := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	notes := []*entities.Note{
		{ID: 1, Title: "first", Content: "a", CreatedAt: ts},
		{ID: 3, Title: "third", Content: "c", CreatedAt: ts},
		{ID: 2, Title: "second", Content: "b", CreatedAt: ts},
	}

	view := client.DeriveView(notes, "", client.OrderDesc)
	require.Len(t, view, 3)
	assert.Equal(t, int64(3), view[0].ID)
	assert.Equal(t, int64(2), view[1].ID)
	assert.Equal(t, int64(1), view[2].ID)
}

func TestDeriveViewIsPure(t *testing.T) {
	notes := sampleNotes()

	first := client.DeriveView(notes, "flight", client.OrderDesc)
	second := client.DeriveView(notes, "flight", client.OrderDesc)
	assert.Equal(t, first, second)

	// Вход не переставляется.
	assert.Equal(t, int64(2), notes[0].ID)
	assert.Equal(t, int64(1), notes[1].ID)
}
