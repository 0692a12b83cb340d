package ports

import (
	"context"

	"github.com/carmart/marketplace-api/internal/core/domain"
)

type CreateCarInput struct {
	Brand string
	Model string
	Price int64
}

type UpdateCarInput struct {
	ID    string
	Brand string
	Model string
	Price int64
}

type CarService interface {
	List(ctx context.Context) ([]domain.Car, error)
	Get(ctx context.Context, id string) (*domain.Car, error)
	Create(ctx context.Context, input CreateCarInput) (*domain.Car, error)
	Update(ctx context.Context, input UpdateCarInput) (*domain.Car, error)
	Delete(ctx context.Context, id string) error
	Buy(ctx context.Context, carID string, buyer *domain.User) error
}
