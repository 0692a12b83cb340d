package service

import (
	"context"
	"sync"

	"github.com/carmart/marketplace-api/internal/core/domain"
)

// memUserRepo is a thread-safe in-memory stand-in for the jsonfile-backed
// user repository.
type memUserRepo struct {
	mu    sync.Mutex
	users []domain.User
}

func newMemUserRepo(users ...domain.User) *memUserRepo {
	return &memUserRepo{users: users}
}

func (r *memUserRepo) All(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrUserExists
		}
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = *user
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *memUserRepo) UpdateBalance(_ context.Context, id string, balance int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == id {
			r.users[i].Balance = balance
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// memCarRepo mirrors memUserRepo for listings.
type memCarRepo struct {
	mu   sync.Mutex
	cars []domain.Car
}

func newMemCarRepo(cars ...domain.Car) *memCarRepo {
	return &memCarRepo{cars: cars}
}

func (r *memCarRepo) All(_ context.Context) ([]domain.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Car, len(r.cars))
	copy(out, r.cars)
	return out, nil
}

func (r *memCarRepo) FindByID(_ context.Context, id string) (*domain.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.cars {
		if c.ID == id {
			clone := c
			return &clone, nil
		}
	}
	return nil, domain.ErrCarNotFound
}

func (r *memCarRepo) Create(_ context.Context, car *domain.Car) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cars = append(r.cars, *car)
	return nil
}

func (r *memCarRepo) Update(_ context.Context, car *domain.Car) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.cars {
		if c.ID == car.ID {
			r.cars[i] = *car
			return nil
		}
	}
	return domain.ErrCarNotFound
}

func (r *memCarRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.cars {
		if c.ID == id {
			r.cars = append(r.cars[:i], r.cars[i+1:]...)
			return nil
		}
	}
	return domain.ErrCarNotFound
}

func (r *memCarRepo) ReplaceAll(_ context.Context, cars []domain.Car) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cars = make([]domain.Car, len(cars))
	copy(r.cars, cars)
	return nil
}

// recordingPublisher captures published purchase events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.PurchaseEvent
}

func (p *recordingPublisher) Publish(event domain.PurchaseEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) all() []domain.PurchaseEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.PurchaseEvent, len(p.events))
	copy(out, p.events)
	return out
}
