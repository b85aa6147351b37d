package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"travelai/internal/auth"
	"travelai/internal/config"
	"travelai/internal/handler"
	"travelai/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	guard *auth.Guard,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	chatHandler *handler.ChatHandler,
	placeHandler *handler.PlaceHandler,
	reviewHandler *handler.ReviewHandler,
	moderationHandler *handler.ModerationHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "TravelAI API",
			"version": "1.0.0",
			"docs":    "/swagger/index.html",
		})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	// Admin routes (require admin role)
	admin := api.Group("/admin", guard.Require(model.RoleAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/users/:id", adminHandler.GetUser)
	admin.PATCH("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)

	// Placeholder routes, no business logic behind them yet
	chat := api.Group("/chat")
	chat.GET("/history", chatHandler.History)
	chat.POST("/message", chatHandler.SendMessage)
	chat.DELETE("/history", chatHandler.ClearHistory)

	places := api.Group("/places")
	places.GET("", placeHandler.List)
	places.GET("/:id", placeHandler.Get)
	places.POST("", placeHandler.Create)
	places.PUT("/:id", placeHandler.Update)
	places.DELETE("/:id", placeHandler.Delete)

	reviews := api.Group("/reviews")
	reviews.GET("", reviewHandler.List)
	reviews.POST("", reviewHandler.Create)
	reviews.DELETE("/:id", reviewHandler.Delete)
	reviews.POST("/:id/report", reviewHandler.Report)

	moderation := api.Group("/moderation")
	moderation.GET("/stats", moderationHandler.Stats)
	moderation.GET("/queue", moderationHandler.Queue)
	moderation.GET("/reports", moderationHandler.Reports)
	moderation.PUT("/reports/:id", moderationHandler.HandleReport)
	moderation.GET("/users", moderationHandler.Users)
	moderation.PUT("/users/:id/role", moderationHandler.ChangeUserRole)
	moderation.PUT("/:id", moderationHandler.ModerateReview)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
