// Package app implements application business logic for the voice-note service.
package app

import (
	"context"
	"fmt"

	"voicenotes/internal/app/dto"
	"voicenotes/internal/domain/entities"
	"voicenotes/internal/ports/repositories"
)

// NoteUseCase представляет собой бизнес-логику работы с заметками.
type NoteUseCase struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository) *NoteUseCase {
	return &NoteUseCase{noteRepo: noteRepo}
}

// ListNotes возвращает все заметки, новые первыми.
func (uc *NoteUseCase) ListNotes(ctx context.Context) ([]*entities.Note, error) {
	notes, err := uc.noteRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	return notes, nil
}

// GetNote возвращает заметку по идентификатору.
func (uc *NoteUseCase) GetNote(ctx context.Context, id int64) (*entities.Note, error) {
	note, err := uc.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching note: %w", err)
	}
	if note == nil {
		return nil, entities.ErrNoteNotFound
	}
	return note, nil
}

// CreateNote создает новую заметку.
func (uc *NoteUseCase) CreateNote(ctx context.Context, req *dto.CreateNoteRequest) (*entities.Note, error) {
	note, err := uc.noteRepo.Create(ctx, req.Title, req.Content)
	if err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}
	return note, nil
}

// UpdateNote обновляет существующую заметку; отсутствующие в запросе
// поля не изменяются.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, id int64, req *dto.UpdateNoteRequest) (*entities.Note, error) {
	note, err := uc.noteRepo.Update(ctx, id, entities.UpdateNote{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return nil, fmt.Errorf("updating note: %w", err)
	}
	if note == nil {
		return nil, entities.ErrNoteNotFound
	}
	return note, nil
}

// DeleteNote удаляет заметку.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, id int64) error {
	deleted, err := uc.noteRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	if !deleted {
		return entities.ErrNoteNotFound
	}
	return nil
}
