package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"modelmatrix/internal/repository"
	"modelmatrix/internal/service"
)

// AdminHandler handles the admin surfaces.
type AdminHandler struct {
	stats   service.StatsService
	catalog service.CatalogService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(stats service.StatsService, catalog service.CatalogService) *AdminHandler {
	return &AdminHandler{stats: stats, catalog: catalog}
}

// Stats godoc
// @Summary Marketplace overview
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.stats.Overview(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, stats)
}

// Models godoc
// @Summary Full catalog listing
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/models [get]
func (h *AdminHandler) Models(c echo.Context) error {
	models, err := h.catalog.ListModels(c.Request().Context(), repository.CatalogFilter{})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, models)
}
