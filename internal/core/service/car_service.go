package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carmart/marketplace-api/internal/core/domain"
	"github.com/carmart/marketplace-api/internal/core/lock"
	"github.com/carmart/marketplace-api/internal/core/ports"
)

// CarService implements listing management and the purchase transaction.
type CarService struct {
	cars   ports.CarRepository
	users  ports.UserRepository
	locks  *lock.Table
	events ports.EventPublisher
	log    zerolog.Logger
}

func NewCarService(
	cars ports.CarRepository,
	users ports.UserRepository,
	locks *lock.Table,
	events ports.EventPublisher,
	log zerolog.Logger,
) *CarService {
	return &CarService{
		cars:   cars,
		users:  users,
		locks:  locks,
		events: events,
		log:    log,
	}
}

func (s *CarService) List(ctx context.Context) ([]domain.Car, error) {
	return s.cars.All(ctx)
}

func (s *CarService) Get(ctx context.Context, id string) (*domain.Car, error) {
	return s.cars.FindByID(ctx, id)
}

func (s *CarService) Create(ctx context.Context, input ports.CreateCarInput) (*domain.Car, error) {
	car := &domain.Car{
		ID:    uuid.NewString(),
		Brand: input.Brand,
		Model: input.Model,
		Price: input.Price,
	}
	if err := s.cars.Create(ctx, car); err != nil {
		return nil, err
	}

	s.log.Info().Str("car_id", car.ID).Str("brand", car.Brand).Str("model", car.Model).Int64("price", car.Price).Msg("car listed")
	return car, nil
}

func (s *CarService) Update(ctx context.Context, input ports.UpdateCarInput) (*domain.Car, error) {
	car, err := s.cars.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	car.Brand = input.Brand
	car.Model = input.Model
	car.Price = input.Price

	if err := s.cars.Update(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *CarService) Delete(ctx context.Context, id string) error {
	return s.cars.Delete(ctx, id)
}

// Buy executes the purchase transaction for carID on behalf of buyer.
//
// The advisory lock on the car id serializes concurrent purchases of the same
// car: availability and funds are only checked after the lock is held, so at
// most one buyer can pass the owner-unset precondition. A failed acquire is
// an immediate ErrResourceBusy; there is no retry, the client must reissue.
//
// The owner transition and the balance debit are two independent table
// writes. A crash between them leaves the car sold with the buyer undebited;
// that partial-failure window is a documented property of the durability
// model, not something this method papers over.
func (s *CarService) Buy(ctx context.Context, carID string, buyer *domain.User) error {
	if !s.locks.TryAcquire(carID) {
		s.log.Warn().Str("car_id", carID).Str("buyer_id", buyer.ID).Msg("purchase declined, car lock busy")
		return domain.ErrResourceBusy
	}
	defer s.locks.Release(carID)

	cars, err := s.cars.All(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range cars {
		if cars[i].ID == carID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.ErrCarNotFound
	}

	car := &cars[idx]
	if !car.Available() {
		return domain.ErrCarUnavailable
	}
	if buyer.Balance < car.Price {
		return domain.ErrInsufficientFunds
	}

	newBalance := buyer.Balance - car.Price
	car.OwnerID = buyer.ID

	if err := s.cars.ReplaceAll(ctx, cars); err != nil {
		return err
	}
	if err := s.users.UpdateBalance(ctx, buyer.ID, newBalance); err != nil {
		return err
	}

	s.log.Info().Str("car_id", carID).Str("buyer_id", buyer.ID).Int64("price", car.Price).Msg("car purchased")

	// Fire-and-forget: event delivery never blocks or fails the purchase.
	s.events.Publish(domain.PurchaseEvent{
		Event:   "Car Purchased",
		CarID:   carID,
		BuyerID: buyer.ID,
	})

	return nil
}
