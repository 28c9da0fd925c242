package http

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"todo-auth-service/internal/infrastructure"
)

const (
	contextUserIdKey    = "userId"
	contextUserEmailKey = "userEmail"
)

// BearerAuth rejects requests without a valid session token. Verification
// failures are never detailed back to the caller.
func BearerAuth(jwtService *infrastructure.JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, Envelope{Success: false, Error: "Unauthorized"})
			}

			claims, err := jwtService.ParseToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, Envelope{Success: false, Error: "Invalid token"})
			}

			userId, err := uuid.Parse(claims.UserId)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, Envelope{Success: false, Error: "Invalid token"})
			}

			c.Set(contextUserIdKey, userId)
			c.Set(contextUserEmailKey, claims.Email)
			return next(c)
		}
	}
}

func userIdFromContext(c echo.Context) (uuid.UUID, bool) {
	userId, ok := c.Get(contextUserIdKey).(uuid.UUID)
	return userId, ok
}

func userEmailFromContext(c echo.Context) (string, bool) {
	email, ok := c.Get(contextUserEmailKey).(string)
	return email, ok
}
