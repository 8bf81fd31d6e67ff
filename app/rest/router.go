package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"portfolio-api/app/port"
	"portfolio-api/app/rest/handlers"
	custommw "portfolio-api/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger         *slog.Logger
	AuthUsecase    port.AuthUsecase
	TokenService   port.TokenService
	BlogUsecase    port.BlogUsecase
	ProjectUsecase port.ProjectUsecase
	MessageUsecase port.MessageUsecase
	DB             handlers.Pinger
	EnableDebug    bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Create handlers
	authHandler := handlers.NewAuthHandler(config.AuthUsecase, config.Logger)
	blogHandler := handlers.NewBlogHandler(config.BlogUsecase, config.Logger)
	projectHandler := handlers.NewProjectHandler(config.ProjectUsecase, config.Logger)
	messageHandler := handlers.NewMessageHandler(config.MessageUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.DB, config.Logger)

	// Create middleware
	authMiddleware := custommw.NewAuthMiddleware(config.TokenService, config.Logger)

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	// Root and health endpoints
	e.GET("/", healthHandler.Root)

	v1 := e.Group("/v1")
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Portfolio API
	api := e.Group("/api/v1")
	requireAuth := authMiddleware.RequireAuth()

	// Credentials
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	// Blogs: public reads, protected writes
	api.GET("/blogs", blogHandler.List)
	api.POST("/blogs", blogHandler.Create, requireAuth)
	api.PATCH("/blogs/:id", blogHandler.Update, requireAuth)
	api.DELETE("/blogs/:id", blogHandler.Delete, requireAuth)

	// Projects: public reads, protected writes
	api.GET("/projects", projectHandler.List)
	api.POST("/projects", projectHandler.Create, requireAuth)
	api.PATCH("/projects/:id", projectHandler.Update, requireAuth)
	api.DELETE("/projects/:id", projectHandler.Delete, requireAuth)

	// Messages: anonymous submission, protected inbox
	api.POST("/messages", messageHandler.Create)
	api.GET("/messages", messageHandler.List, requireAuth)

	return e
}
