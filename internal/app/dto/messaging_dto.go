package dto

// SendMessageRequest содержит данные для отправки заметки сообщением.
// VoiceType выбирает голос для messageType == "voice" и необязателен.
type SendMessageRequest struct {
	Recipient   string `json:"recipient"`
	Content     string `json:"content"`
	MessageType string `json:"messageType"`
	VoiceType   string `json:"voiceType,omitempty"`
}

// SendMessageResponse содержит результат имитации отправки.
type SendMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
