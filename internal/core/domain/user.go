package domain

import "errors"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")

// User models a marketplace account. PasswordHash is opaque to everything
// except the auth service and is never rendered in API responses.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Balance      int64  `json:"balance"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// Principal is the authenticated identity attached to a request for its
// duration. It is derived from a validated session token and never persisted.
type Principal struct {
	UserID string
	Role   string
}

func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }
