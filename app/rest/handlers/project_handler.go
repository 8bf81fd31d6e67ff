package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"portfolio-api/app/domain"
	"portfolio-api/app/port"
)

// ProjectHandler handles project HTTP requests
type ProjectHandler struct {
	projectUsecase port.ProjectUsecase
	logger         *slog.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectUsecase port.ProjectUsecase, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectUsecase: projectUsecase,
		logger:         logger,
	}
}

// Create handles POST /api/v1/projects
func (h *ProjectHandler) Create(c echo.Context) error {
	var doc domain.Document
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	if _, err := h.projectUsecase.Create(c.Request().Context(), doc); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, MessageResponse{Message: "Project added successfully!"})
}

// List handles GET /api/v1/projects
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.projectUsecase.List(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list projects", "error", err)
		return respondError(c, err)
	}

	if projects == nil {
		projects = []*domain.StoredDocument{}
	}
	return c.JSON(http.StatusOK, projects)
}

// Update handles PATCH /api/v1/projects/:id
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Project not found"})
	}

	var patch domain.Document
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	updated, err := h.projectUsecase.Update(c.Request().Context(), id, patch)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/projects/:id
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Project not found"})
	}

	if err := h.projectUsecase.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Project deleted successfully!"})
}
