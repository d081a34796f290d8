package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "modelmatrix/internal/errors"
	"modelmatrix/internal/service"
)

// PurchaseHandler handles purchase endpoints.
type PurchaseHandler struct {
	purchases service.PurchaseService
}

// NewPurchaseHandler creates a new purchase handler.
func NewPurchaseHandler(purchases service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases}
}

// Purchase godoc
// @Summary Purchase a model
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Param id path string true "Model ID"
// @Success 201 {object} Envelope
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /models/{id}/purchase [post]
func (h *PurchaseHandler) Purchase(c echo.Context) error {
	ident, ok := identity(c)
	if !ok {
		return respondError(c, apperrors.ErrUnauthorized)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondBadRequest(c, "invalid model id")
	}

	purchase, err := h.purchases.Purchase(c.Request().Context(), ident, id)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusCreated, purchase)
}

// MyPurchases godoc
// @Summary Purchases made by the caller
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 401 {object} errors.ErrorResponse
// @Router /my-purchases [get]
func (h *PurchaseHandler) MyPurchases(c echo.Context) error {
	ident, ok := identity(c)
	if !ok {
		return respondError(c, apperrors.ErrUnauthorized)
	}
	purchases, err := h.purchases.PurchasesByBuyer(c.Request().Context(), ident.Email)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, purchases)
}
