package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "modelmatrix/internal/errors"
	"modelmatrix/internal/model"
	"modelmatrix/internal/repository"
	"modelmatrix/internal/service"
)

// ModelHandler handles catalog endpoints.
type ModelHandler struct {
	catalog service.CatalogService
}

// NewModelHandler creates a new model handler.
func NewModelHandler(catalog service.CatalogService) *ModelHandler {
	return &ModelHandler{catalog: catalog}
}

// CreateModelRequest represents a model listing request.
type CreateModelRequest struct {
	Name      string `json:"name" validate:"required"`
	Framework string `json:"framework" validate:"required"`
	UseCase   string `json:"useCase"`
	Image     string `json:"image" validate:"omitempty,url"`
}

// UpdateModelRequest represents a partial model update. Absent fields are
// left untouched.
type UpdateModelRequest struct {
	Name      *string `json:"name"`
	Framework *string `json:"framework"`
	UseCase   *string `json:"useCase"`
	Image     *string `json:"image" validate:"omitempty,url"`
}

// Create godoc
// @Summary List a new model
// @Tags models
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateModelRequest true "Model data"
// @Success 201 {object} Envelope
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /models [post]
func (h *ModelHandler) Create(c echo.Context) error {
	ident, ok := identity(c)
	if !ok {
		return respondError(c, apperrors.ErrUnauthorized)
	}

	var req CreateModelRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, err.Error())
	}

	created, err := h.catalog.CreateModel(c.Request().Context(), ident, &model.Model{
		Name:      req.Name,
		Framework: req.Framework,
		UseCase:   req.UseCase,
		Image:     req.Image,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusCreated, created)
}

// List godoc
// @Summary Browse the catalog
// @Tags models
// @Produce json
// @Param search query string false "Case-insensitive substring match on name"
// @Param framework query string false "Comma-separated framework set"
// @Success 200 {object} Envelope
// @Router /models [get]
func (h *ModelHandler) List(c echo.Context) error {
	filter := repository.ParseCatalogFilter(c.QueryParam("search"), c.QueryParam("framework"))
	models, err := h.catalog.ListModels(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, models)
}

// Recent godoc
// @Summary Newest catalog entries
// @Tags models
// @Produce json
// @Success 200 {object} Envelope
// @Router /models/recent [get]
func (h *ModelHandler) Recent(c echo.Context) error {
	models, err := h.catalog.RecentModels(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, models)
}

// Get godoc
// @Summary Get model by id
// @Tags models
// @Produce json
// @Security BearerAuth
// @Param id path string true "Model ID"
// @Success 200 {object} Envelope
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /models/{id} [get]
func (h *ModelHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondBadRequest(c, "invalid model id")
	}
	m, err := h.catalog.GetModel(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, m)
}

// Update godoc
// @Summary Update an owned model
// @Tags models
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Model ID"
// @Param request body UpdateModelRequest true "Fields to update"
// @Success 200 {object} Envelope
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /models/{id} [put]
func (h *ModelHandler) Update(c echo.Context) error {
	ident, ok := identity(c)
	if !ok {
		return respondError(c, apperrors.ErrUnauthorized)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondBadRequest(c, "invalid model id")
	}

	var req UpdateModelRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, err.Error())
	}

	updated, err := h.catalog.UpdateModel(c.Request().Context(), ident, id, service.ModelUpdate{
		Name:      req.Name,
		Framework: req.Framework,
		UseCase:   req.UseCase,
		Image:     req.Image,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete an owned model
// @Tags models
// @Produce json
// @Security BearerAuth
// @Param id path string true "Model ID"
// @Success 200 {object} Envelope
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /models/{id} [delete]
func (h *ModelHandler) Delete(c echo.Context) error {
	ident, ok := identity(c)
	if !ok {
		return respondError(c, apperrors.ErrUnauthorized)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondBadRequest(c, "invalid model id")
	}
	if err := h.catalog.DeleteModel(c.Request().Context(), ident, id); err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, map[string]bool{"deleted": true})
}

// MyModels godoc
// @Summary Models listed by the caller
// @Tags models
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 401 {object} errors.ErrorResponse
// @Router /my-models [get]
func (h *ModelHandler) MyModels(c echo.Context) error {
	ident, ok := identity(c)
	if !ok {
		return respondError(c, apperrors.ErrUnauthorized)
	}
	models, err := h.catalog.ModelsByCreator(c.Request().Context(), ident.Email)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, models)
}
