package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/oksasatya/talenthub/internal/domain"
	"github.com/oksasatya/talenthub/internal/domain/entity"
	"github.com/oksasatya/talenthub/internal/domain/repository"
)

type UserRepository struct {
	store repository.RecordStore[entity.User]
	clock Clock
}

func NewUserRepository(store repository.RecordStore[entity.User], clock Clock) *UserRepository {
	return &UserRepository{store: store, clock: clock}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	existing, err := r.GetByEmail(ctx, u.Email)
	if err == nil && existing != nil {
		return fmt.Errorf("user with email %q: %w", u.Email, domain.ErrConflict)
	}
	if err != nil && !isNotFound(err) {
		return err
	}
	id, err := r.store.NextID(ctx)
	if err != nil {
		return fmt.Errorf("allocate user id: %w", err)
	}
	u.ID = id
	u.CreatedAt = r.clock.now()
	if err := r.store.Put(ctx, id, *u); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, found, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return &u, nil
}

// GetByEmail matches case-insensitively on the normalized (lowercased) email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	users, err := r.store.Find(ctx, repository.Equal("email", email, func(u entity.User) string { return u.Email }))
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("user %q: %w", email, domain.ErrNotFound)
	}
	return &users[0], nil
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	users, err := r.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
