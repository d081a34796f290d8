package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"modelmatrix/internal/auth"
	"modelmatrix/internal/authz"
	"modelmatrix/internal/config"
	"modelmatrix/internal/handler"
	"modelmatrix/internal/model"
	"modelmatrix/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	verifier auth.Verifier,
	users service.UserService,
	modelHandler *handler.ModelHandler,
	purchaseHandler *handler.PurchaseHandler,
	userHandler *handler.UserHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Authorization building blocks, composed declaratively per route.
	gate := auth.Gate(verifier)
	ownerOnly := authz.Require(users, authz.Owner())
	adminOnly := authz.Require(users, authz.Role(model.RoleAdmin))

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "server is running")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Users
	e.POST("/users", userHandler.SignIn)
	e.GET("/users/:email", userHandler.GetProfile, gate, ownerOnly)
	e.PUT("/users/:email", userHandler.UpdateProfile, gate, ownerOnly)
	e.GET("/users", userHandler.List, gate, adminOnly)
	e.DELETE("/users/:id", userHandler.Delete, gate, adminOnly)

	// Admin
	e.GET("/admin/stats", adminHandler.Stats, gate, adminOnly)
	e.GET("/admin/models", adminHandler.Models, gate, adminOnly)

	// Catalog
	e.POST("/models", modelHandler.Create, gate)
	e.GET("/models", modelHandler.List)
	e.GET("/models/recent", modelHandler.Recent)
	e.GET("/models/:id", modelHandler.Get, gate)
	e.PUT("/models/:id", modelHandler.Update, gate)
	e.DELETE("/models/:id", modelHandler.Delete, gate)

	// Purchases
	e.POST("/models/:id/purchase", purchaseHandler.Purchase, gate)
	e.GET("/my-models", modelHandler.MyModels, gate)
	e.GET("/my-purchases", purchaseHandler.MyPurchases, gate)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
