package ports

import (
	"context"

	"github.com/carmart/marketplace-api/internal/core/domain"
)

// CarRepository defines persistence for listings. ReplaceAll exists for the
// purchase transaction, which must apply the owner transition to the table it
// just read rather than re-reading inside the write.
type CarRepository interface {
	All(ctx context.Context) ([]domain.Car, error)
	FindByID(ctx context.Context, id string) (*domain.Car, error)
	Create(ctx context.Context, car *domain.Car) error
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, cars []domain.Car) error
}
