package memory

import (
	"context"
	"sync"

	"voicenotes/internal/domain/entities"
)

// UserRepository хранит пользователей в памяти процесса.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[int64]entities.User
	nextID int64
}

// NewUserRepository создает пустой репозиторий пользователей.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int64]entities.User),
		nextID: 1,
	}
}

// Create назначает следующий идентификатор, сохраняет и возвращает запись.
func (r *UserRepository) Create(_ context.Context, username, passwordHash string) (*entities.User, error) {
	user, err := entities.NewUser(username, passwordHash)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user

	return user, nil
}

// GetByID возвращает копию пользователя или (nil, nil), если его нет.
func (r *UserRepository) GetByID(_ context.Context, id int64) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// GetByUsername возвращает копию пользователя или (nil, nil), если его нет.
func (r *UserRepository) GetByUsername(_ context.Context, username string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			copied := user
			return &copied, nil
		}
	}
	return nil, nil
}
