package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio-api/app/port"
	"portfolio-api/app/utils/validator"
)

// AuthHandler handles registration and login HTTP requests
type AuthHandler struct {
	authUsecase port.AuthUsecase
	validator   *validator.Validator
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator.New(),
		logger:      logger,
	}
}

// RegisterRequest is the registration request body
type RegisterRequest struct {
	Username string `json:"username" validate:"required,username"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest is the login request body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued session token
type LoginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"accessToken"`
}

// Register handles POST /api/v1/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}

	_, err := h.authUsecase.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.logger.Warn("registration failed", "email", req.Email, "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, MessageResponse{Message: "User registered successfully!"})
}

// Login handles POST /api/v1/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}

	token, err := h.authUsecase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Message:     "User logged in successfully!",
		AccessToken: token,
	})
}
