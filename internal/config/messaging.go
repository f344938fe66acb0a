package config

import "time"

// MessagingConfig содержит настройки имитации отправки сообщений.
type MessagingConfig struct {
	// SendDelay имитирует задержку обращения к внешнему провайдеру.
	SendDelay time.Duration `yaml:"send_delay" env:"NOTES_MESSAGING_SEND_DELAY" env-default:"1s"`
}
