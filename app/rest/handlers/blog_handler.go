package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"portfolio-api/app/domain"
	"portfolio-api/app/port"
)

// BlogHandler handles blog post HTTP requests
type BlogHandler struct {
	blogUsecase port.BlogUsecase
	logger      *slog.Logger
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blogUsecase port.BlogUsecase, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{
		blogUsecase: blogUsecase,
		logger:      logger,
	}
}

// Create handles POST /api/v1/blogs
func (h *BlogHandler) Create(c echo.Context) error {
	var doc domain.Document
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	if _, err := h.blogUsecase.Create(c.Request().Context(), doc); err != nil {
		h.logger.Error("failed to create blog", "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, MessageResponse{Message: "Blog created successfully!"})
}

// List handles GET /api/v1/blogs
func (h *BlogHandler) List(c echo.Context) error {
	blogs, err := h.blogUsecase.List(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list blogs", "error", err)
		return respondError(c, err)
	}

	if blogs == nil {
		blogs = []*domain.StoredDocument{}
	}
	return c.JSON(http.StatusOK, blogs)
}

// Update handles PATCH /api/v1/blogs/:id. An empty patch and an unknown
// id both report that there was nothing to change.
func (h *BlogHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Blog not found"})
	}

	var patch domain.Document
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	updated, err := h.blogUsecase.Update(c.Request().Context(), id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyPatch) || errors.Is(err, domain.ErrDocumentNotFound) {
			return c.JSON(http.StatusNotFound, MessageResponse{Message: "No blog was updated"})
		}
		h.logger.Error("failed to update blog", "id", id, "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/blogs/:id. Deleting an id that is
// already gone still succeeds.
func (h *BlogHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid blog id"})
	}

	if err := h.blogUsecase.Delete(c.Request().Context(), id); err != nil {
		h.logger.Error("failed to delete blog", "id", id, "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Blog deleted successfully!"})
}
