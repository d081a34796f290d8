package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"modelmatrix/internal/auth"
	apperrors "modelmatrix/internal/errors"
)

// Envelope is the success envelope returned on every successful request.
type Envelope struct {
	Success bool        `json:"success"`
	Result  interface{} `json:"result"`
}

// respond writes the uniform success envelope.
func respond(c echo.Context, status int, result interface{}) error {
	return c.JSON(status, Envelope{Success: true, Result: result})
}

// respondError maps a domain error onto the uniform error envelope.
func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, apperrors.NewErrorResponse(httpErr.Message))
}

// respondBadRequest writes a 400 error envelope.
func respondBadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, apperrors.NewErrorResponse(message))
}

// identity returns the gate-attached identity; ok is false when a route was
// somehow reached without passing the gate.
func identity(c echo.Context) (auth.Identity, bool) {
	return auth.FromContext(c)
}
