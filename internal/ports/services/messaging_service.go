package services

import (
	"context"

	"voicenotes/internal/app/dto"
)

// MessagingService определяет интерфейс сервиса отправки сообщений.
type MessagingService interface {
	SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
}
