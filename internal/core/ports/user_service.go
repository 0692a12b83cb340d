package ports

import (
	"context"

	"github.com/carmart/marketplace-api/internal/core/domain"
)

type UpdateUserInput struct {
	ID       string
	Username string
	Password string
	Actor    domain.Principal
}

type DeleteUserInput struct {
	ID    string
	Actor domain.Principal
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, input DeleteUserInput) error
	Fund(ctx context.Context, id string, amount int64) (*domain.User, error)
}
