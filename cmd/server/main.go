package main

import (
	"log"
	"net/http"

	_ "travelai/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"travelai/internal/auth"
	"travelai/internal/cache"
	"travelai/internal/config"
	"travelai/internal/db"
	"travelai/internal/handler"
	"travelai/internal/model"
	"travelai/internal/repository"
	"travelai/internal/router"
	"travelai/internal/service"
)

// @title TravelAI API
// @version 1.0
// @description REST backend for the TravelAI travel recommendation application.
// @host localhost:8000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	sessions := auth.NewSessionStore(cacheClient, cfg.SessionTTL)

	userRepo := repository.NewUserRepository(gormDB)
	guard := auth.NewGuard(userRepo, sessions)

	authService := service.NewAuthService(userRepo, sessions, cfg.BcryptCost)
	userService := service.NewUserService(userRepo)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(userService)
	chatHandler := handler.NewChatHandler()
	placeHandler := handler.NewPlaceHandler()
	reviewHandler := handler.NewReviewHandler()
	moderationHandler := handler.NewModerationHandler()

	router.Register(
		e,
		cfg,
		guard,
		authHandler,
		adminHandler,
		chatHandler,
		placeHandler,
		reviewHandler,
		moderationHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
