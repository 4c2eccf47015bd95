package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/finboard/finboard/internal/config"
	"github.com/gin-gonic/gin"
)

// DefaultCookieName is the session cookie issued at login.
const DefaultCookieName = "_sid"

// Manager reads and writes the session cookie. The cookie carries the raw
// token; only its hash ever reaches storage, so the cookie is the single
// place the plaintext token lives.
type Manager struct {
	cookieName string
	secure     bool
}

func NewManager(cfg config.Config) *Manager {
	return &Manager{
		cookieName: DefaultCookieName,
		secure:     cfg.AuthCookieSecure,
	}
}

func (m *Manager) CookieName() string {
	return m.cookieName
}

// ReadToken returns the raw session token from the request, if one is set.
func (m *Manager) ReadToken(c *gin.Context) (string, bool) {
	token, err := c.Cookie(m.cookieName)
	if err != nil || strings.TrimSpace(token) == "" {
		return "", false
	}
	return token, true
}

// Set issues the cookie with a lifetime matching the session expiry.
// HttpOnly and SameSite Lax always; Secure follows configuration.
func (m *Manager) Set(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, token, maxAge, "/", "", m.secure, true)
}

// Clear expires the cookie immediately.
func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
}
