package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/carmart/marketplace-api/internal/core/domain"
	"github.com/carmart/marketplace-api/internal/core/ports"
)

const defaultStartingBalance = 100000

// AuthService implements registration, login and session-token handling.
// Tokens are HS256 JWTs carrying the user id and role; they are short-lived
// and the auth middleware reissues one on every authenticated request.
type AuthService struct {
	users           ports.UserRepository
	jwtSecret       string
	tokenTTL        time.Duration
	startingBalance int64
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration, startingBalance int64) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 5 * time.Minute
	}
	if startingBalance <= 0 {
		startingBalance = defaultStartingBalance
	}
	return &AuthService{
		users:           users,
		jwtSecret:       jwtSecret,
		tokenTTL:        tokenTTL,
		startingBalance: startingBalance,
	}
}

// Register creates a new account with the fixed starting balance. New
// accounts are always plain users; admins are seeded out of band.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Balance:      s.startingBalance,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns a fresh session token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Authenticate resolves a session token to the account it names. The user
// table is re-read on every call, so a token held past account deletion stops
// working immediately.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidCredentials
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}

// IssueToken signs a fresh token for user, used at login and for the
// per-request rotation.
func (s *AuthService) IssueToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) TokenTTL() time.Duration { return s.tokenTTL }
