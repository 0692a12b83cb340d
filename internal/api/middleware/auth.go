package middleware

import (
	"net/http"

	"github.com/carmart/marketplace-api/internal/api/pipeline"
	"github.com/carmart/marketplace-api/internal/api/session"
	"github.com/carmart/marketplace-api/internal/core/ports"
)

// Auth validates the session cookie, injects the resolved account into the
// context and rotates the cookie. Requests without a valid session are ended
// with a 401 before the rest of the route chain runs.
func Auth(auth ports.AuthService) pipeline.Stage {
	return func(c *pipeline.Context, next func()) {
		token, ok := session.Token(c.Request)
		if !ok {
			c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized: missing session"})
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized: invalid session"})
			return
		}

		// Rotate: every authenticated request gets a fresh short-lived token.
		fresh, err := auth.IssueToken(user)
		if err != nil {
			c.Log.Error().Err(err).Msg("token rotation failed")
			c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
			return
		}
		session.SetCookie(c.Response, fresh, auth.TokenTTL())

		c.User = user
		next()
	}
}

// AdminOnly guards admin routes. Chain it after Auth.
func AdminOnly(c *pipeline.Context, next func()) {
	if c.User == nil || !c.User.IsAdmin() {
		c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden: admin access required"})
		return
	}
	next()
}
