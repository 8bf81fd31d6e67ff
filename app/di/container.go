package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"portfolio-api/app/config"
	"portfolio-api/app/domain"
	"portfolio-api/app/driver/postgres"
	"portfolio-api/app/driver/security"
	"portfolio-api/app/driver/token"
	"portfolio-api/app/port"
	"portfolio-api/app/rest"
	"portfolio-api/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	Hasher       port.PasswordHasher
	TokenService port.TokenService

	// Usecases
	AuthUsecase    port.AuthUsecase
	BlogUsecase    port.BlogUsecase
	ProjectUsecase port.ProjectUsecase
	MessageUsecase port.MessageUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.Hasher = security.NewBcryptHasher(cfg.BcryptCost)
	container.TokenService = token.NewJWTService(token.Config{
		Secret: cfg.TokenSecret,
		Expiry: cfg.TokenExpiry,
	})

	// Repositories
	pool := container.DB.Pool()
	identityRepo := postgres.NewIdentityRepository(pool, logger)
	blogRepo := postgres.NewDocumentRepository(pool, domain.CollectionBlogs, logger)
	projectRepo := postgres.NewDocumentRepository(pool, domain.CollectionProjects, logger)
	messageRepo := postgres.NewDocumentRepository(pool, domain.CollectionMessages, logger)

	// Usecases
	container.AuthUsecase = usecase.NewAuthUsecase(identityRepo, container.Hasher, container.TokenService, logger)
	container.BlogUsecase = usecase.NewBlogUsecase(blogRepo, logger)
	container.ProjectUsecase = usecase.NewProjectUsecase(projectRepo, logger)
	container.MessageUsecase = usecase.NewMessageUsecase(messageRepo, logger)

	logger.Info("container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:         c.Logger,
		AuthUsecase:    c.AuthUsecase,
		TokenService:   c.TokenService,
		BlogUsecase:    c.BlogUsecase,
		ProjectUsecase: c.ProjectUsecase,
		MessageUsecase: c.MessageUsecase,
		DB:             c.DB.Pool(),
		EnableDebug:    c.Config.LogLevel == "debug",
	}

	return rest.NewRouter(routerConfig)
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("container closed")
	return nil
}
