package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"modelmatrix/internal/model"
	"modelmatrix/internal/service"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	users service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// SignInRequest represents the profile posted on every sign-in.
type SignInRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
	Image string `json:"image" validate:"omitempty,url"`
}

// UpdateProfileRequest represents a partial profile update.
type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Image *string `json:"image" validate:"omitempty,url"`
}

// SignIn godoc
// @Summary Upsert a user on sign-in
// @Tags users
// @Accept json
// @Produce json
// @Param request body SignInRequest true "User profile"
// @Success 200 {object} Envelope
// @Failure 400 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, err.Error())
	}

	user, err := h.users.SignIn(c.Request().Context(), &model.User{
		Email: req.Email,
		Name:  req.Name,
		Image: req.Image,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, user)
}

// GetProfile godoc
// @Summary Get a user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Success 200 {object} Envelope
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{email} [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.users.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update a user profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Param request body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} Envelope
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{email} [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, err.Error())
	}

	user, err := h.users.UpdateProfile(c.Request().Context(), c.Param("email"), service.ProfileUpdate{
		Name:  req.Name,
		Image: req.Image,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, user)
}

// List godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, users)
}

// Delete godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User record ID"
// @Success 200 {object} Envelope
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respondBadRequest(c, "invalid user id")
	}
	if err := h.users.Delete(c.Request().Context(), uint(id)); err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, map[string]bool{"deleted": true})
}
