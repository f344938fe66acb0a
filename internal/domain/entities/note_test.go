package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicenotes/internal/domain/entities"
)

func TestNewNote(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		content     string
		wantTitle   string
		wantContent string
		wantErr     error
	}{
		{
			name:        "valid input",
			title:       "Groceries",
			content:     "milk eggs bread",
			wantTitle:   "Groceries",
			wantContent: "milk eggs bread",
		},
		{
			name:        "input is trimmed",
			title:       "  Groceries  ",
			content:     "\tmilk eggs bread\n",
			wantTitle:   "Groceries",
			wantContent: "milk eggs bread",
		},
		{
			name:    "empty title",
			title:   "",
			content: "milk",
			wantErr: entities.ErrEmptyTitle,
		},
		{
			name:    "whitespace-only title",
			title:   "   ",
			content: "milk",
			wantErr: entities.ErrEmptyTitle,
		},
		{
			name:    "empty content",
			title:   "Groceries",
			content: "",
			wantErr: entities.ErrEmptyContent,
		},
		{
			name:    "whitespace-only content",
			title:   "Groceries",
			content: " \n ",
			wantErr: entities.ErrEmptyContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note, err := entities.NewNote(tt.title, tt.content)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, note)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, note.Title)
			assert.Equal(t, tt.wantContent, note.Content)
			assert.Zero(t, note.ID)
			assert.True(t, note.CreatedAt.IsZero())
		})
	}
}

func TestUpdateNoteApply(t *testing.T) {
	createdAt := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	base := entities.Note{
		ID:        7,
		Title:     "Groceries",
		Content:   "milk eggs bread",
		CreatedAt: createdAt,
	}

	strPtr := func(s string) *string { return &s }

	t.Run("title only leaves content untouched", func(t *testing.T) {
		updated, err := entities.UpdateNote{Title: strPtr("Shopping")}.Apply(base)
		require.NoError(t, err)
		assert.Equal(t, "Shopping", updated.Title)
		assert.Equal(t, "milk eggs bread", updated.Content)
		assert.Equal(t, int64(7), updated.ID)
		assert.Equal(t, createdAt, updated.CreatedAt)
	})

	t.Run("both fields with trimming", func(t *testing.T) {
		updated, err := entities.UpdateNote{
			Title:   strPtr("  Shopping "),
			Content: strPtr(" cheese "),
		}.Apply(base)
		require.NoError(t, err)
		assert.Equal(t, "Shopping", updated.Title)
		assert.Equal(t, "cheese", updated.Content)
	})

	t.Run("no fields is a no-op", func(t *testing.T) {
		updated, err := entities.UpdateNote{}.Apply(base)
		require.NoError(t, err)
		assert.Equal(t, base, updated)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		_, err := entities.UpdateNote{Title: strPtr("   ")}.Apply(base)
		assert.ErrorIs(t, err, entities.ErrEmptyTitle)
	})

	t.Run("empty content rejected", func(t *testing.T) {
		_, err := entities.UpdateNote{Content: strPtr("")}.Apply(base)
		assert.ErrorIs(t, err, entities.ErrEmptyContent)
	})

	t.Run("original note is not mutated", func(t *testing.T) {
		_, err := entities.UpdateNote{Title: strPtr("Changed")}.Apply(base)
		require.NoError(t, err)
		assert.Equal(t, "Groceries", base.Title)
	})
}
