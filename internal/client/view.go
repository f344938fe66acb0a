package client

import (
	"sort"
	"strings"

	"voicenotes/internal/domain/entities"
)

// SortOrder задает направление сортировки представления.
type SortOrder string

// Поддерживаемые направления; по умолчанию новые первыми.
const (
	OrderDesc SortOrder = "desc"
	OrderAsc  SortOrder = "asc"
)

// DeriveView - чистая функция представления: фильтрует заметки по
// подстроке без учета регистра (по заголовку или содержимому), затем
// сортирует по времени создания в заданном направлении, при равном
// времени - по убыванию идентификатора. Вход не изменяется.
func DeriveView(notes []*entities.Note, query string, order SortOrder) []*entities.Note {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make([]*entities.Note, 0, len(notes))
	for _, note := range notes {
		if query == "" ||
			strings.Contains(strings.ToLower(note.Title), query) ||
			strings.Contains(strings.ToLower(note.Content), query) {
			filtered = append(filtered, note)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if order == OrderAsc {
			a, b = b, a
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})

	return filtered
}
