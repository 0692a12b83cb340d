package ports

import (
	"context"

	"github.com/carmart/marketplace-api/internal/core/domain"
)

// UserRepository defines persistence for marketplace accounts. Every
// operation is a whole-table read-modify-write against the backing document;
// there is no partial-row update primitive.
type UserRepository interface {
	All(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	UpdateBalance(ctx context.Context, id string, balance int64) error
}
