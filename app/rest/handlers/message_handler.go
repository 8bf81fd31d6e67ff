package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio-api/app/domain"
	"portfolio-api/app/port"
)

// MessageHandler handles contact message HTTP requests. Submission is
// open to anonymous visitors; reading the inbox requires a session.
type MessageHandler struct {
	messageUsecase port.MessageUsecase
	logger         *slog.Logger
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageUsecase port.MessageUsecase, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{
		messageUsecase: messageUsecase,
		logger:         logger,
	}
}

// Create handles POST /api/v1/messages
func (h *MessageHandler) Create(c echo.Context) error {
	var doc domain.Document
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	if _, err := h.messageUsecase.Create(c.Request().Context(), doc); err != nil {
		h.logger.Error("failed to store message", "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, MessageResponse{Message: "Message received successfully!"})
}

// List handles GET /api/v1/messages
func (h *MessageHandler) List(c echo.Context) error {
	messages, err := h.messageUsecase.List(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list messages", "error", err)
		return respondError(c, err)
	}

	if messages == nil {
		messages = []*domain.StoredDocument{}
	}
	return c.JSON(http.StatusOK, messages)
}
