package pipeline

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/carmart/marketplace-api/internal/core/domain"
)

// ErrEmptyBody is returned by Bind when no request body was captured for the
// request, typically because the client sent none or omitted the JSON
// content type.
var ErrEmptyBody = errors.New("empty request body")

// Context carries one request through the stage chain. Stages communicate by
// mutating it: the body parser fills Body, the router fills Params, the auth
// stage fills User.
type Context struct {
	Response http.ResponseWriter
	Request  *http.Request
	Log      zerolog.Logger

	// Params holds the named path segments extracted by the router.
	Params map[string]string

	// Body is the raw JSON request body captured by the body-parser stage.
	Body []byte

	// User is the authenticated account injected by the auth stage, nil on
	// unauthenticated routes.
	User *domain.User
}

func (c *Context) Param(name string) string {
	return c.Params[name]
}

// Principal returns the transient identity of the authenticated user.
func (c *Context) Principal() domain.Principal {
	if c.User == nil {
		return domain.Principal{}
	}
	return domain.Principal{UserID: c.User.ID, Role: c.User.Role}
}

// Bind unmarshals the captured request body into v.
func (c *Context) Bind(v any) error {
	if len(c.Body) == 0 {
		return ErrEmptyBody
	}
	return json.Unmarshal(c.Body, v)
}

// JSON writes a JSON response with the given status code.
func (c *Context) JSON(status int, v any) {
	c.Response.Header().Set("Content-Type", "application/json")
	c.Response.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(c.Response).Encode(v); err != nil {
			c.Log.Error().Err(err).Msg("failed to encode response body")
		}
	}
}

// NoContent writes a bare status code with no body.
func (c *Context) NoContent(status int) {
	c.Response.WriteHeader(status)
}
