// Package repositories defines repository interfaces for the voice-note service.
package repositories

import (
	"context"

	"voicenotes/internal/domain/entities"
)

// NoteRepository определяет контракт хранилища заметок. Репозиторий -
// единственный владелец идентификаторов и времени создания записей.
type NoteRepository interface {
	// List возвращает снимок всех заметок, отсортированный по времени
	// создания по убыванию; при равенстве - по убыванию идентификатора.
	List(ctx context.Context) ([]*entities.Note, error)
	// GetByID возвращает (nil, nil), если заметка не найдена.
	GetByID(ctx context.Context, id int64) (*entities.Note, error)
	// Create валидирует входные данные, назначает следующий идентификатор
	// и текущее время, сохраняет и возвращает запись целиком.
	Create(ctx context.Context, title, content string) (*entities.Note, error)
	// Update возвращает (nil, nil), если заметка не найдена.
	Update(ctx context.Context, id int64, upd entities.UpdateNote) (*entities.Note, error)
	// Delete возвращает true, если запись существовала и была удалена.
	Delete(ctx context.Context, id int64) (bool, error)
}
