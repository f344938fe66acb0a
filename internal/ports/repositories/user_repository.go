package repositories

import (
	"context"

	"voicenotes/internal/domain/entities"
)

// UserRepository определяет контракт хранилища пользователей.
type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (*entities.User, error)
	// GetByID возвращает (nil, nil), если пользователь не найден.
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	// GetByUsername возвращает (nil, nil), если пользователь не найден.
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
}
