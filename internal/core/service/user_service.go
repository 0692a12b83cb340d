package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/carmart/marketplace-api/internal/core/domain"
	"github.com/carmart/marketplace-api/internal/core/ports"
)

type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.All(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Update changes username and/or password. Plain users may only touch their
// own account; admins may touch any.
func (s *UserService) Update(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	if !input.Actor.IsAdmin() && input.Actor.UserID != input.ID {
		return nil, domain.ErrForbidden
	}

	user, err := s.users.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user updated")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, input ports.DeleteUserInput) error {
	if !input.Actor.IsAdmin() && input.Actor.UserID != input.ID {
		return domain.ErrForbidden
	}

	if err := s.users.Delete(ctx, input.ID); err != nil {
		return err
	}

	s.log.Info().Str("user_id", input.ID).Msg("user deleted")
	return nil
}

// Fund credits amount to the account's balance. Amount positivity is
// validated at the API boundary.
func (s *UserService) Fund(ctx context.Context, id string, amount int64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Balance += amount
	if err := s.users.UpdateBalance(ctx, id, user.Balance); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Int64("amount", amount).Int64("balance", user.Balance).Msg("account funded")
	return user, nil
}
