package ports

import (
	"context"
	"time"

	"github.com/carmart/marketplace-api/internal/core/domain"
)

// AuthService covers registration, login and session-token handling. Tokens
// are short-lived and reissued on every authenticated request, so IssueToken
// is exposed separately from Login for the rotation path.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	IssueToken(user *domain.User) (string, error)
	TokenTTL() time.Duration
}
