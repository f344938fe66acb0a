package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"voicenotes/internal/app/dto"
	"voicenotes/pkg/logger"
)

// Ошибки валидации отправки сообщений.
var (
	ErrInvalidRecipient = errors.New("invalid recipient phone number")
	ErrEmptyMessage     = errors.New("message content must not be empty")
)

// Номер в международном формате: необязательный "+", первая цифра 1-9,
// всего от 2 до 15 цифр.
var (
	phonePattern      = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Каналы доставки для текста подтверждения.
const (
	channelText  = "text message"
	channelVoice = "voice call"
)

// MessagingUseCase имитирует отправку заметки внешним провайдером
// сообщений. Реальной доставки и повторных попыток нет.
type MessagingUseCase struct {
	sendDelay time.Duration
}

// NewMessagingUseCase создает новый экземпляр MessagingUseCase.
// sendDelay имитирует задержку обращения к провайдеру.
func NewMessagingUseCase(sendDelay time.Duration) *MessagingUseCase {
	return &MessagingUseCase{sendDelay: sendDelay}
}

// SendMessage проверяет получателя и содержимое, имитирует сетевую
// задержку и возвращает подтверждение с указанием канала доставки.
func (uc *MessagingUseCase) SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	recipient := whitespacePattern.ReplaceAllString(req.Recipient, "")
	if !phonePattern.MatchString(recipient) {
		return nil, ErrInvalidRecipient
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyMessage
	}

	if uc.sendDelay > 0 {
		select {
		case <-time.After(uc.sendDelay):
		case <-ctx.Done():
			return nil, fmt.Errorf("sending message: %w", ctx.Err())
		}
	}

	channel := channelText
	if req.MessageType == "voice" {
		channel = channelVoice
	}

	logger.Log(ctx).Info(ctx, "simulated message delivery",
		zap.String("channel", channel),
		zap.String("voice_type", req.VoiceType),
		zap.Int("content_length", len(req.Content)))

	return &dto.SendMessageResponse{
		Success: true,
		Message: fmt.Sprintf("Message sent successfully via %s", channel),
	}, nil
}
