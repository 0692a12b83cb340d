package jsonfile

import (
	"context"

	"github.com/carmart/marketplace-api/internal/core/domain"
)

const usersTable = "users"

// UserRepository stores accounts in the users table. The stored shape keeps
// the credential hash under "password", which the domain type deliberately
// hides from JSON rendering.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

type storedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Balance  int64  `json:"balance"`
}

func toStoredUser(u *domain.User) storedUser {
	return storedUser{
		ID:       u.ID,
		Username: u.Username,
		Password: u.PasswordHash,
		Role:     u.Role,
		Balance:  u.Balance,
	}
}

func (su storedUser) toDomain() domain.User {
	return domain.User{
		ID:           su.ID,
		Username:     su.Username,
		PasswordHash: su.Password,
		Role:         su.Role,
		Balance:      su.Balance,
	}
}

func (r *UserRepository) readAll(ctx context.Context) ([]storedUser, error) {
	var users []storedUser
	if err := r.store.Read(ctx, usersTable, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) All(ctx context.Context) ([]domain.User, error) {
	stored, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(stored))
	for _, su := range stored {
		users = append(users, su.toDomain())
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	stored, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, su := range stored {
		if su.ID == id {
			u := su.toDomain()
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	stored, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, su := range stored {
		if su.Username == username {
			u := su.toDomain()
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Create appends user to the table. Username uniqueness is enforced here, at
// the same read-check-write boundary the rest of the table operations use.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	stored, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	for _, su := range stored {
		if su.Username == user.Username {
			return domain.ErrUserExists
		}
	}
	stored = append(stored, toStoredUser(user))
	return r.store.Write(ctx, usersTable, stored)
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	stored, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	for i, su := range stored {
		if su.ID == user.ID {
			stored[i] = toStoredUser(user)
			return r.store.Write(ctx, usersTable, stored)
		}
	}
	return domain.ErrUserNotFound
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	stored, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	kept := stored[:0]
	for _, su := range stored {
		if su.ID != id {
			kept = append(kept, su)
		}
	}
	if len(kept) == len(stored) {
		return domain.ErrUserNotFound
	}
	return r.store.Write(ctx, usersTable, kept)
}

func (r *UserRepository) UpdateBalance(ctx context.Context, id string, balance int64) error {
	stored, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	for i, su := range stored {
		if su.ID == id {
			stored[i].Balance = balance
			return r.store.Write(ctx, usersTable, stored)
		}
	}
	return domain.ErrUserNotFound
}
