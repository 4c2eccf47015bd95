package server

import (
	"net/http"

	"github.com/finboard/finboard/internal/auth/gate"
	"github.com/gin-gonic/gin"
)

const (
	contextUserIDKey = "user_id"

	loginPath = "/login"
)

// Gate resolves the session (if any) and applies the authorization decision
// for the requested path: denied requests bounce to the sign-in page, and
// signed-in users are kept out of public entry pages.
func (s *Server) Gate() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAuthenticated := false
		if token, ok := s.sessions.ReadToken(c); ok {
			session, err := s.authsvc.Authenticate(c.Request.Context(), token)
			if err == nil {
				isAuthenticated = true
				c.Set(contextUserIDKey, session.UserID.String())
			}
		}

		outcome := gate.Decide(isAuthenticated, c.Request.URL.Path)
		switch outcome.Decision {
		case gate.Deny:
			c.Redirect(http.StatusSeeOther, loginPath)
			c.Abort()
		case gate.Redirect:
			c.Redirect(http.StatusSeeOther, outcome.Location)
			c.Abort()
		default:
			c.Next()
		}
	}
}
