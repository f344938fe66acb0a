// Package dto содержит структуры запросов и ответов HTTP API.
package dto

// CreateNoteRequest содержит данные для создания заметки.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNoteRequest содержит данные для частичного обновления заметки.
// Nil-поле означает "оставить без изменений".
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}
