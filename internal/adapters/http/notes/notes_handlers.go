// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"voicenotes/internal/adapters/http/middleware"
	"voicenotes/internal/app/dto"
	"voicenotes/internal/domain/entities"
	"voicenotes/internal/ports/services"
	"voicenotes/pkg/logger"
)

// Сообщения об ошибках, видимые клиенту.
const (
	ErrMsgInvalidNoteID      = "invalid note id"
	ErrMsgNoteNotFound       = "note not found"
	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgInternal           = "internal server error"
)

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	notesService services.NotesService
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(notesService services.NotesService) *Handler {
	return &Handler{notesService: notesService}
}

// ListNotes обрабатывает запрос на получение всех заметок, новые первыми.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(requestCtx, "handling list notes request")

	notes, err := h.notesService.ListNotes(requestCtx)
	if err != nil {
		log.Error(requestCtx, "failed to list notes", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(notes); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetNote обрабатывает запрос на получение заметки по ID.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetNote"))
	log.Debug(requestCtx, "handling get note request")

	id, ok := parseNoteID(ctx)
	if !ok {
		log.Warn(requestCtx, ErrMsgInvalidNoteID, zap.String("raw_id", ctx.Params("id")))
		return respondError(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	note, err := h.notesService.GetNote(requestCtx, id)
	if err != nil {
		log.Error(requestCtx, "failed to get note", zap.Error(err), zap.Int64("note_id", id))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// CreateNote обрабатывает запрос на создание новой заметки.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(requestCtx, "handling create note request")

	var req dto.CreateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Warn(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return respondError(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	note, err := h.notesService.CreateNote(requestCtx, &req)
	if err != nil {
		log.Error(requestCtx, "failed to create note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateNote обрабатывает запрос на частичное обновление заметки.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(requestCtx, "handling update note request")

	id, ok := parseNoteID(ctx)
	if !ok {
		log.Warn(requestCtx, ErrMsgInvalidNoteID, zap.String("raw_id", ctx.Params("id")))
		return respondError(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	var req dto.UpdateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Warn(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return respondError(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	note, err := h.notesService.UpdateNote(requestCtx, id, &req)
	if err != nil {
		log.Error(requestCtx, "failed to update note", zap.Error(err), zap.Int64("note_id", id))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteNote обрабатывает запрос на удаление заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(requestCtx, "handling delete note request")

	id, ok := parseNoteID(ctx)
	if !ok {
		log.Warn(requestCtx, ErrMsgInvalidNoteID, zap.String("raw_id", ctx.Params("id")))
		return respondError(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	if err := h.notesService.DeleteNote(requestCtx, id); err != nil {
		log.Error(requestCtx, "failed to delete note", zap.Error(err), zap.Int64("note_id", id))
		return handleError(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// parseNoteID разбирает path-параметр id; валидны только положительные
// целые числа.
func parseNoteID(ctx fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// handleError переводит доменные ошибки в HTTP-статусы. Непредвиденные
// ошибки не раскрывают внутренних деталей.
func handleError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, entities.ErrNoteNotFound):
		return respondError(ctx, fiber.StatusNotFound, ErrMsgNoteNotFound)
	case errors.Is(err, entities.ErrEmptyTitle):
		return respondError(ctx, fiber.StatusBadRequest, entities.ErrEmptyTitle.Error())
	case errors.Is(err, entities.ErrEmptyContent):
		return respondError(ctx, fiber.StatusBadRequest, entities.ErrEmptyContent.Error())
	default:
		return respondError(ctx, fiber.StatusInternalServerError, ErrMsgInternal)
	}
}

// respondError отправляет клиенту JSON с сообщением об ошибке.
func respondError(ctx fiber.Ctx, status int, message string) error {
	if err := ctx.Status(status).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}
	return nil
}
