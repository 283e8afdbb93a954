package memory

import (
	"github.com/coffee-urbantech/pos-api/internal/domain"
	"github.com/coffee-urbantech/pos-api/internal/domain/entity"
	"github.com/coffee-urbantech/pos-api/internal/domain/repository"
)

// UserRepository implementación en memoria de repository.UserRepository.
type UserRepository struct {
	store *Store
}

// NewUserRepository crea el repositorio sobre el store dado.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.store.users[user.ID] = copyUser(user)
	return nil
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	u, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	return copyUser(u), nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, nil
}
