package middleware

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"snapshare/internal/presentation"
)

func basic(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func TestAdminAuthMiddleware(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	mw := AdminAuthMiddleware(AdminConfig{Username: "moderator", PasswordHash: string(hash), Realm: "snapshare"})

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{name: "missing header", expectedStatus: http.StatusUnauthorized},
		{name: "wrong scheme", authHeader: "Bearer token", expectedStatus: http.StatusUnauthorized},
		{name: "wrong user", authHeader: basic("admin", "s3cret"), expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", authHeader: basic("moderator", "guess"), expectedStatus: http.StatusUnauthorized},
		{name: "valid credential", authHeader: basic("moderator", "s3cret"), expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			req := httptest.NewRequest(http.MethodDelete, "/api/photos/x", http.NoBody)
			if tt.authHeader != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authHeader)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := mw(func(c echo.Context) error {
				assert.Equal(t, "moderator", c.Get(presentation.AdminUserKey))

				return c.NoContent(http.StatusOK)
			})

			err := handler(c)
			if tt.expectedStatus == http.StatusOK {
				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)

				return
			}

			var he *echo.HTTPError
			if err != nil {
				require.ErrorAs(t, err, &he)
				assert.Equal(t, tt.expectedStatus, he.Code)
			} else {
				assert.Equal(t, tt.expectedStatus, rec.Code)
			}
		})
	}
}
