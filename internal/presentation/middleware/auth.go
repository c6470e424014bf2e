package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"

	"snapshare/internal/presentation"
	"snapshare/pkg/logger"
)

// AdminConfig holds the single shared moderation credential.
type AdminConfig struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"-"`
	Realm        string `yaml:"realm"`
}

// AdminAuthMiddleware guards moderation routes with HTTP basic auth. The
// password is compared against a bcrypt hash, never stored in clear.
func AdminAuthMiddleware(cfg AdminConfig) echo.MiddlewareFunc {
	hash := []byte(cfg.PasswordHash)
	username := []byte(cfg.Username)

	return echoMiddleware.BasicAuthWithConfig(echoMiddleware.BasicAuthConfig{
		Realm: cfg.Realm,
		Validator: func(user, password string, c echo.Context) (bool, error) {
			if subtle.ConstantTimeCompare([]byte(user), username) != 1 {
				logger.Warn("admin login rejected", "ip", c.RealIP())

				return false, nil
			}
			if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
				logger.Warn("admin login rejected", "ip", c.RealIP())

				return false, nil
			}
			c.Set(presentation.AdminUserKey, user)

			return true, nil
		},
	})
}
