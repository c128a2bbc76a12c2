package session

import (
	"net/http"

	"github.com/angelmondragon/storefront-backend/pkg/config"
	"github.com/google/uuid"
)

// Manager resolves the opaque cart session cookie. The token scopes an
// anonymous cart and confers no identity or authorization beyond that.
type Manager struct {
	cookieName string
	maxAge     int
	secure     bool
}

// NewManager builds a cookie-backed session resolver.
func NewManager(cfg config.SessionConfig) *Manager {
	name := cfg.CookieName
	if name == "" {
		name = "session_id"
	}
	return &Manager{
		cookieName: name,
		maxAge:     int(cfg.TTL.Seconds()),
		secure:     cfg.Secure,
	}
}

// FromRequest returns the session id carried by the request cookie, if any.
func (m *Manager) FromRequest(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// Mint generates a fresh opaque session id.
func (m *Manager) Mint() string {
	return uuid.NewString()
}

// SetCookie attaches the session credential to the response. Long-lived,
// httpOnly, SameSite=Lax, whole-site scope.
func (m *Manager) SetCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   m.maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
