// Package entities defines the domain entities for the voice-note service.
package entities

import (
	"errors"
	"strings"
	"time"
)

// Ошибки доменного уровня для заметок.
var (
	ErrEmptyTitle   = errors.New("note title must not be empty")
	ErrEmptyContent = errors.New("note content must not be empty")
	ErrNoteNotFound = errors.New("note not found")
)

// Note представляет собой голосовую заметку.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewNote проверяет и нормализует данные новой заметки. Поля ID и
// CreatedAt назначает репозиторий при сохранении.
func NewNote(title, content string) (*Note, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if title == "" {
		return nil, ErrEmptyTitle
	}
	if content == "" {
		return nil, ErrEmptyContent
	}

	return &Note{
		Title:   title,
		Content: content,
	}, nil
}

// UpdateNote описывает частичное обновление заметки.
// Nil-поле означает "оставить без изменений".
type UpdateNote struct {
	Title   *string
	Content *string
}

// Apply применяет обновление к копии заметки. Поля ID и CreatedAt
// остаются неизменными при любом обновлении.
func (u UpdateNote) Apply(note Note) (Note, error) {
	if u.Title != nil {
		title := strings.TrimSpace(*u.Title)
		if title == "" {
			return Note{}, ErrEmptyTitle
		}
		note.Title = title
	}
	if u.Content != nil {
		content := strings.TrimSpace(*u.Content)
		if content == "" {
			return Note{}, ErrEmptyContent
		}
		note.Content = content
	}
	return note, nil
}
