package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo-auth-service/internal/application/services"
	"todo-auth-service/internal/config"
	httpdelivery "todo-auth-service/internal/delivery/http"
	"todo-auth-service/internal/infrastructure"
	"todo-auth-service/internal/infrastructure/cache"
	"todo-auth-service/internal/infrastructure/db/postgres"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}
	defer func() {
		if err := postgres.Close(db); err != nil {
			log.Printf("closing database: %v", err)
		}
	}()

	var todoCache *cache.TodoCache
	if cfg.RedisURL != "" {
		rdb, err := cache.Connect(cfg.RedisURL)
		if err != nil {
			log.Fatal("failed to connect to redis: ", err)
		}
		defer rdb.Close()
		todoCache = cache.NewTodoCache(rdb, cfg.TodoCacheTTL)
		log.Println("todo cache enabled")
	}

	jwtService := infrastructure.NewJWTService(cfg.JWTSecret)
	mailer := infrastructure.NewMailService(cfg.EmailAPIKey, cfg.EmailSender, cfg.AppBaseURL)
	oauthProviders := map[string]infrastructure.OAuthProvider{
		"google": infrastructure.NewGoogleOAuth(
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.GoogleRedirectURL,
		),
	}

	userRepo := postgres.NewUserRepository(db)
	todoRepo := postgres.NewTodoRepository(db)

	authService := services.NewAuthService(userRepo, jwtService, mailer)
	oauthService := services.NewOAuthService(userRepo, jwtService, oauthProviders)
	todoService := services.NewTodoService(todoRepo, todoCache)

	e := httpdelivery.NewRouter(
		httpdelivery.NewAuthHandler(authService, oauthService, jwtService, cfg.IsProduction()),
		httpdelivery.NewTodoHandler(todoService, cfg.IsProduction()),
		httpdelivery.NewHealthHandler(db, cfg.IsProduction()),
		jwtService,
	)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Println("server stopped: ", err)
		}
	}()
	log.Println("server running on port " + cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatal("forced shutdown: ", err)
	}
}
