// Package session handles the HTTP-only session cookie carrying the auth
// token. The cookie is short-lived and reissued on every authenticated
// request.
package session

import (
	"net/http"
	"time"
)

const CookieName = "sessionId"

// SetCookie attaches a fresh session cookie to the response.
func SetCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Token extracts the session token from the request cookie, if present.
func Token(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
