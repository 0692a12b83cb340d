package jsonfile

import (
	"context"

	"github.com/carmart/marketplace-api/internal/core/domain"
)

const carsTable = "cars"

// CarRepository stores listings in the cars table. An unsold car is stored
// with ownerId null, matching the document format the frontend consumes.
type CarRepository struct {
	store *Store
}

func NewCarRepository(store *Store) *CarRepository {
	return &CarRepository{store: store}
}

type storedCar struct {
	ID      string  `json:"id"`
	Brand   string  `json:"brand"`
	Model   string  `json:"model"`
	Price   int64   `json:"price"`
	OwnerID *string `json:"ownerId"`
}

func toStoredCar(c *domain.Car) storedCar {
	sc := storedCar{
		ID:    c.ID,
		Brand: c.Brand,
		Model: c.Model,
		Price: c.Price,
	}
	if c.OwnerID != "" {
		owner := c.OwnerID
		sc.OwnerID = &owner
	}
	return sc
}

func (sc storedCar) toDomain() domain.Car {
	c := domain.Car{
		ID:    sc.ID,
		Brand: sc.Brand,
		Model: sc.Model,
		Price: sc.Price,
	}
	if sc.OwnerID != nil {
		c.OwnerID = *sc.OwnerID
	}
	return c
}

func (r *CarRepository) readAll(ctx context.Context) ([]storedCar, error) {
	var cars []storedCar
	if err := r.store.Read(ctx, carsTable, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *CarRepository) All(ctx context.Context) ([]domain.Car, error) {
	stored, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	cars := make([]domain.Car, 0, len(stored))
	for _, sc := range stored {
		cars = append(cars, sc.toDomain())
	}
	return cars, nil
}

func (r *CarRepository) FindByID(ctx context.Context, id string) (*domain.Car, error) {
	stored, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, sc := range stored {
		if sc.ID == id {
			c := sc.toDomain()
			return &c, nil
		}
	}
	return nil, domain.ErrCarNotFound
}

func (r *CarRepository) Create(ctx context.Context, car *domain.Car) error {
	stored, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	stored = append(stored, toStoredCar(car))
	return r.store.Write(ctx, carsTable, stored)
}

func (r *CarRepository) Update(ctx context.Context, car *domain.Car) error {
	stored, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	for i, sc := range stored {
		if sc.ID == car.ID {
			stored[i] = toStoredCar(car)
			return r.store.Write(ctx, carsTable, stored)
		}
	}
	return domain.ErrCarNotFound
}

func (r *CarRepository) Delete(ctx context.Context, id string) error {
	stored, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	kept := stored[:0]
	for _, sc := range stored {
		if sc.ID != id {
			kept = append(kept, sc)
		}
	}
	if len(kept) == len(stored) {
		return domain.ErrCarNotFound
	}
	return r.store.Write(ctx, carsTable, kept)
}

// ReplaceAll writes the whole table in one step. The purchase transaction
// uses it to persist the owner transition against the exact table contents it
// validated under the advisory lock.
func (r *CarRepository) ReplaceAll(ctx context.Context, cars []domain.Car) error {
	stored := make([]storedCar, 0, len(cars))
	for i := range cars {
		stored = append(stored, toStoredCar(&cars[i]))
	}
	return r.store.Write(ctx, carsTable, stored)
}
