// Package client реализует клиентское хранилище заметок: локальный список,
// зеркалируемый через порт репозитория, и производное представление
// (поиск + сортировка) для отображения.
//
// Локальный вариант приложения подставляет сюда репозиторий в памяти,
// серверный - любую реализацию того же порта, контракт операций общий.
package client

import (
	"context"
	"fmt"
	"sync"

	"voicenotes/internal/domain/entities"
	"voicenotes/internal/ports/repositories"
)

// Store хранит клиентский список заметок. Локальное состояние меняется
// только после подтверждения операции репозиторием; неудачная операция
// оставляет список нетронутым.
type Store struct {
	repo repositories.NoteRepository

	mu    sync.Mutex
	notes []*entities.Note
}

// NewStore создает пустое клиентское хранилище поверх репозитория.
func NewStore(repo repositories.NoteRepository) *Store {
	return &Store{repo: repo}
}

// Refresh заменяет локальный список снимком репозитория.
func (s *Store) Refresh(ctx context.Context) error {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("refreshing notes: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = notes
	return nil
}

// AddNote создает заметку через репозиторий и добавляет ее в локальный
// список.
func (s *Store) AddNote(ctx context.Context, title, content string) (*entities.Note, error) {
	note, err := s.repo.Create(ctx, title, content)
	if err != nil {
		return nil, fmt.Errorf("adding note: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append(s.notes, note)
	return note, nil
}

// UpdateNote обновляет заметку через репозиторий и заменяет ее в
// локальном списке.
func (s *Store) UpdateNote(ctx context.Context, id int64, upd entities.UpdateNote) (*entities.Note, error) {
	note, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("updating note: %w", err)
	}
	if note == nil {
		return nil, entities.ErrNoteNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.notes {
		if existing.ID == id {
			s.notes[i] = note
			break
		}
	}
	return note, nil
}

// DeleteNote удаляет заметку через репозиторий и убирает ее из
// локального списка.
func (s *Store) DeleteNote(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	if !deleted {
		return entities.ErrNoteNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.notes {
		if existing.ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			break
		}
	}
	return nil
}

// Notes возвращает копию локального списка.
func (s *Store) Notes() []*entities.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := make([]*entities.Note, len(s.notes))
	copy(notes, s.notes)
	return notes
}

// View возвращает производное представление локального списка.
// Пересчет не обращается ни к сети, ни к хранилищу.
func (s *Store) View(query string, order SortOrder) []*entities.Note {
	return DeriveView(s.Notes(), query, order)
}
