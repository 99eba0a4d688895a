package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/colemarcuccilli/IBEwebsite/config"
)

// SessionCookieName is the HTTP-only cookie carrying the admin session token.
const SessionCookieName = "ibe_admin_session"

// SessionTTL is how long an admin login stays valid.
const SessionTTL = 24 * time.Hour

type loginInput struct {
	Password string `json:"password" binding:"required"`
}

// AdminLoginHandler compares the submitted password against the configured
// shared secret and, on match, sets a signed session cookie valid 24 hours.
// POST /admin/login
func AdminLoginHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.AdminPassword == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Admin password not configured"})
			return
		}

		var input loginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
			return
		}

		if input.Password != cfg.AdminPassword {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password"})
			return
		}

		token, err := IssueSessionToken(cfg.SessionSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookieName, token, int(SessionTTL.Seconds()), "/", "", gin.Mode() == gin.ReleaseMode, true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// AdminLogoutHandler clears the session cookie.
// POST /admin/logout
func AdminLogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookieName, "", -1, "/", "", gin.Mode() == gin.ReleaseMode, true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// IssueSessionToken signs a fresh admin session JWT.
func IssueSessionToken(secret string) (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(SessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
