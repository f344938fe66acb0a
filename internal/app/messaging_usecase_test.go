package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicenotes/internal/app"
	"voicenotes/internal/app/dto"
)

func TestSendMessageValidation(t *testing.T) {
	useCase := app.NewMessagingUseCase(0)
	ctx := context.Background()

	tests := []struct {
		name        string
		req         *dto.SendMessageRequest
		wantErr     error
		wantMessage string
	}{
		{
			name:        "valid text message",
			req:         &dto.SendMessageRequest{Recipient: "+15551234567", Content: "hello", MessageType: "text"},
			wantMessage: "text message",
		},
		{
			name:        "valid voice call",
			req:         &dto.SendMessageRequest{Recipient: "+15551234567", Content: "hello", MessageType: "voice", VoiceType: "female"},
			wantMessage: "voice call",
		},
		{
			name:        "recipient whitespace is stripped",
			req:         &dto.SendMessageRequest{Recipient: "+1 555 123 4567", Content: "hello", MessageType: "text"},
			wantMessage: "text message",
		},
		{
			name:        "plus sign optional",
			req:         &dto.SendMessageRequest{Recipient: "15551234567", Content: "hello", MessageType: "text"},
			wantMessage: "text message",
		},
		{
			name:    "not a phone number",
			req:     &dto.SendMessageRequest{Recipient: "notaphone", Content: "hello", MessageType: "text"},
			wantErr: app.ErrInvalidRecipient,
		},
		{
			name:    "leading zero rejected",
			req:     &dto.SendMessageRequest{Recipient: "+05551234567", Content: "hello", MessageType: "text"},
			wantErr: app.ErrInvalidRecipient,
		},
		{
			name:    "empty recipient",
			req:     &dto.SendMessageRequest{Recipient: "", Content: "hello", MessageType: "text"},
			wantErr: app.ErrInvalidRecipient,
		},
		{
			name:    "too long",
			req:     &dto.SendMessageRequest{Recipient: "+1234567890123456", Content: "hello", MessageType: "text"},
			wantErr: app.ErrInvalidRecipient,
		},
		{
			name:    "empty content",
			req:     &dto.SendMessageRequest{Recipient: "+15551234567", Content: "  ", MessageType: "text"},
			wantErr: app.ErrEmptyMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := useCase.SendMessage(ctx, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.Success)
			assert.Contains(t, result.Message, tt.wantMessage)
		})
	}
}

func TestSendMessageRespectsContextCancellation(t *testing.T) {
	useCase := app.NewMessagingUseCase(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := useCase.SendMessage(ctx, &dto.SendMessageRequest{
		Recipient:   "+15551234567",
		Content:     "hello",
		MessageType: "text",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestSendMessageSimulatedLatency(t *testing.T) {
	delay := 50 * time.Millisecond
	useCase := app.NewMessagingUseCase(delay)

	start := time.Now()
	result, err := useCase.SendMessage(context.Background(), &dto.SendMessageRequest{
		Recipient:   "+15551234567",
		Content:     "hello",
		MessageType: "text",
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.GreaterOrEqual(t, time.Since(start), delay)
}
