package entities

import "errors"

// Ошибки доменного уровня для пользователей.
var (
	ErrEmptyUsername = errors.New("username must not be empty")
	ErrUserNotFound  = errors.New("user not found")
)

// User представляет пользователя полного (серверного) варианта приложения.
// Поле PasswordHash непрозрачно для сервиса и не сериализуется.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// NewUser проверяет и нормализует данные нового пользователя.
func NewUser(username, passwordHash string) (*User, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
	}, nil
}
