package server

import (
	"errors"
	"net/http"

	authdomain "github.com/finboard/finboard/internal/auth/domain"
	"github.com/finboard/finboard/internal/auth/gate"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

const msgInvalidCredentials = "Invalid Credentials"

// Login verifies submitted credentials and opens a session. Every credential
// failure collapses into one generic message so the response never reveals
// which check rejected it.
func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgInvalidCredentials})
		return
	}

	result, err := s.authsvc.Login(c.Request.Context(), authdomain.LoginRequest{
		Email:     req.Email,
		Password:  req.Password,
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		if errors.Is(err, authdomain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": msgInvalidCredentials})
			return
		}
		// Lookup transport failure is fatal to the request, not a mismatch.
		AbortWithError(c, err)
		return
	}

	s.sessions.Set(c, result.RawToken, result.ExpiresAt)
	s.log.Info("login created session",
		zap.String("request_id", c.GetString("request_id")),
	)

	c.Redirect(http.StatusSeeOther, gate.DefaultPath)
}

func (s *Server) Logout(c *gin.Context) {
	token, ok := s.sessions.ReadToken(c)
	if !ok {
		AbortWithError(c, authdomain.ErrInvalidSession)
		return
	}
	if err := s.authsvc.Logout(c.Request.Context(), token); err != nil {
		AbortWithError(c, err)
		return
	}

	s.sessions.Clear(c)
	c.Redirect(http.StatusSeeOther, loginPath)
}
