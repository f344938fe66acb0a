// Package memory реализует репозитории в памяти процесса. Это эталонное
// хранилище сервиса: записи живут до перезапуска процесса.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"voicenotes/internal/domain/entities"
)

// NoteRepository хранит заметки в map под мьютексом. Каждая операция
// изменяет запись целиком, частичных состояний не бывает.
type NoteRepository struct {
	mu     sync.RWMutex
	notes  map[int64]entities.Note
	nextID int64
}

// NewNoteRepository создает пустой репозиторий заметок.
func NewNoteRepository() *NoteRepository {
	return &NoteRepository{
		notes:  make(map[int64]entities.Note),
		nextID: 1,
	}
}

// List возвращает копии всех заметок, отсортированные по времени создания
// по убыванию; при равном времени - по убыванию идентификатора.
func (r *NoteRepository) List(_ context.Context) ([]*entities.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Note, 0, len(r.notes))
	for _, note := range r.notes {
		copied := note
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	return result, nil
}

// GetByID возвращает копию заметки или (nil, nil), если ее нет.
func (r *NoteRepository) GetByID(_ context.Context, id int64) (*entities.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	note, ok := r.notes[id]
	if !ok {
		return nil, nil
	}
	return &note, nil
}

// Create назначает следующий идентификатор и текущее время, сохраняет
// и возвращает запись. Идентификаторы строго возрастают и не
// переиспользуются после удаления.
func (r *NoteRepository) Create(_ context.Context, title, content string) (*entities.Note, error) {
	note, err := entities.NewNote(title, content)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	note.ID = r.nextID
	r.nextID++
	note.CreatedAt = time.Now()
	r.notes[note.ID] = *note

	return note, nil
}

// Update применяет частичное обновление поверх существующей записи.
// Возвращает (nil, nil), если заметки нет.
func (r *NoteRepository) Update(_ context.Context, id int64, upd entities.UpdateNote) (*entities.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.notes[id]
	if !ok {
		return nil, nil
	}

	updated, err := upd.Apply(existing)
	if err != nil {
		return nil, err
	}
	r.notes[id] = updated

	return &updated, nil
}

// Delete удаляет запись навсегда; счетчик идентификаторов не откатывается.
func (r *NoteRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.notes[id]
	if ok {
		delete(r.notes, id)
	}
	return ok, nil
}
