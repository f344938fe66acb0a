// Package services defines the service interfaces consumed by HTTP handlers.
package services

import (
	"context"

	"voicenotes/internal/app/dto"
	"voicenotes/internal/domain/entities"
)

// NotesService определяет интерфейс сервиса заметок.
type NotesService interface {
	ListNotes(ctx context.Context) ([]*entities.Note, error)
	GetNote(ctx context.Context, id int64) (*entities.Note, error)
	CreateNote(ctx context.Context, req *dto.CreateNoteRequest) (*entities.Note, error)
	UpdateNote(ctx context.Context, id int64, req *dto.UpdateNoteRequest) (*entities.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}
