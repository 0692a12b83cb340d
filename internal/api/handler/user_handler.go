package handler

import (
	"net/http"

	"github.com/carmart/marketplace-api/internal/api/pipeline"
	"github.com/carmart/marketplace-api/internal/api/session"
	"github.com/carmart/marketplace-api/internal/core/ports"
)

// UserHandler serves account registration, login and management routes. Its
// methods are pipeline stages: terminal, never calling the continuation.
type UserHandler struct {
	auth  ports.AuthService
	users ports.UserService
}

func NewUserHandler(auth ports.AuthService, users ports.UserService) *UserHandler {
	return &UserHandler{auth: auth, users: users}
}

// Register handles POST /register.
func (h *UserHandler) Register(c *pipeline.Context, _ func()) {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
		return
	}
	if err := checkStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login handles POST /login. Success sets the session cookie.
func (h *UserHandler) Login(c *pipeline.Context, _ func()) {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
		return
	}
	if err := checkStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	token, _, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	session.SetCookie(c.Response, token, h.auth.TokenTTL())
	c.JSON(http.StatusOK, messageResponse{Message: "Login successful"})
}

// List handles GET /users (admin).
func (h *UserHandler) List(c *pipeline.Context, _ func()) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Me handles GET /users/me, echoing the account the auth stage resolved.
func (h *UserHandler) Me(c *pipeline.Context, _ func()) {
	c.JSON(http.StatusOK, c.User)
}

// Update handles PUT /users/:id (self or admin).
func (h *UserHandler) Update(c *pipeline.Context, _ func()) {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil && err != pipeline.ErrEmptyBody {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
		return
	}

	user, err := h.users.Update(c.Request.Context(), ports.UpdateUserInput{
		ID:       c.Param("id"),
		Username: req.Username,
		Password: req.Password,
		Actor:    c.Principal(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /users/:id (self or admin).
func (h *UserHandler) Delete(c *pipeline.Context, _ func()) {
	err := h.users.Delete(c.Request.Context(), ports.DeleteUserInput{
		ID:    c.Param("id"),
		Actor: c.Principal(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.NoContent(http.StatusNoContent)
}

// Fund handles POST /users/:id/fund (admin).
func (h *UserHandler) Fund(c *pipeline.Context, _ func()) {
	var req fundRequest
	if err := c.Bind(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "a positive amount is required"})
		return
	}
	if err := checkStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	user, err := h.users.Fund(c.Request.Context(), c.Param("id"), req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
