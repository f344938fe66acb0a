// Package messaging содержит HTTP-обработчик имитации отправки сообщений.
package messaging

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"voicenotes/internal/adapters/http/middleware"
	"voicenotes/internal/app"
	"voicenotes/internal/app/dto"
	"voicenotes/internal/ports/services"
	"voicenotes/pkg/logger"
)

// Сообщения об ошибках, видимые клиенту.
const (
	ErrMsgInvalidRecipient   = "invalid phone number format, use international format (e.g. +1234567890)"
	ErrMsgEmptyContent       = "recipient phone number and content are required"
	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgInternal           = "internal server error"
)

// Handler обработчик HTTP-запросов отправки сообщений.
type Handler struct {
	messagingService services.MessagingService
}

// NewHandler создает новый экземпляр обработчика сообщений.
func NewHandler(messagingService services.MessagingService) *Handler {
	return &Handler{messagingService: messagingService}
}

// SendMessage обрабатывает запрос на отправку заметки сообщением.
func (h *Handler) SendMessage(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.SendMessage"))
	log.Debug(requestCtx, "handling send message request")

	var req dto.SendMessageRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Warn(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return respondError(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	result, err := h.messagingService.SendMessage(requestCtx, &req)
	if err != nil {
		log.Warn(requestCtx, "failed to send message", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(result); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// handleError переводит ошибки валидации в HTTP-статусы.
func handleError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidRecipient):
		return respondError(ctx, fiber.StatusBadRequest, ErrMsgInvalidRecipient)
	case errors.Is(err, app.ErrEmptyMessage):
		return respondError(ctx, fiber.StatusBadRequest, ErrMsgEmptyContent)
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
