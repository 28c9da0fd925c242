package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"todo-auth-service/internal/infrastructure"
)

// NewRouter wires every route under /api onto a fresh echo instance.
func NewRouter(
	authHandler *AuthHandler,
	todoHandler *TodoHandler,
	healthHandler *HealthHandler,
	jwtService *infrastructure.JWTService,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	api := e.Group("/api")

	health := api.Group("/health")
	health.GET("", healthHandler.Live)
	health.GET("/db", healthHandler.Database)

	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.GET("/verify-email", authHandler.VerifyEmail)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)
	auth.POST("/o-auth/:provider", authHandler.OAuthBegin)
	auth.GET("/o-auth/:provider/callback", authHandler.OAuthCallback)

	todo := api.Group("/todo", BearerAuth(jwtService))
	todo.POST("", todoHandler.Create)
	todo.GET("", todoHandler.List)
	todo.GET("/:id", todoHandler.Get)
	todo.PUT("/:id", todoHandler.Update)
	todo.DELETE("/:id", todoHandler.Delete)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"status":  http.StatusNotFound,
			"message": "Not Found",
			"path":    c.Request().URL.Path,
		})
	})

	return e
}
