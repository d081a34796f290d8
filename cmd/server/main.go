package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"

	"modelmatrix/docs"
	"modelmatrix/internal/auth"
	"modelmatrix/internal/cache"
	"modelmatrix/internal/config"
	"modelmatrix/internal/db"
	"modelmatrix/internal/handler"
	"modelmatrix/internal/model"
	"modelmatrix/internal/repository"
	"modelmatrix/internal/router"
	"modelmatrix/internal/service"
)

// @title ModelMatrix API
// @version 1.0
// @description AI model marketplace API: list, browse and purchase models, with bearer-token authentication.
// @host localhost:5000
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the provider-issued ID token.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	unitPrice, err := decimal.NewFromString(cfg.ModelUnitPrice)
	if err != nil {
		log.Fatalf("parse MODEL_UNIT_PRICE: %v", err)
	}

	creds, err := auth.ParseCredentials(cfg.IdentityCredentials)
	if err != nil {
		log.Fatalf("identity credentials: %v", err)
	}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	gormDB, err := db.New(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Model{},
		&model.Purchase{},
		&model.PurchaseLog{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize auth components
	verifier := auth.NewVerifier(creds, auth.NewIdentityCache(cacheClient))

	// Initialize repositories
	modelRepo := repository.NewModelRepository(gormDB)
	purchaseRepo := repository.NewPurchaseRepository(gormDB)
	purchaseLogRepo := repository.NewPurchaseLogRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	statsRepo := repository.NewStatsRepository(gormDB)

	// Initialize services
	catalogService := service.NewCatalogService(modelRepo, cacheClient)
	purchaseService := service.NewPurchaseService(modelRepo, purchaseRepo, purchaseLogRepo, cacheClient)
	userService := service.NewUserService(userRepo, cacheClient)
	statsService := service.NewStatsService(statsRepo, cacheClient, unitPrice)

	// Initialize handlers
	modelHandler := handler.NewModelHandler(catalogService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)
	userHandler := handler.NewUserHandler(userService)
	adminHandler := handler.NewAdminHandler(statsService, catalogService)

	// Register routes
	router.Register(
		e,
		cfg,
		verifier,
		userService,
		modelHandler,
		purchaseHandler,
		userHandler,
		adminHandler,
	)

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := cacheClient.Close(); err != nil {
		log.Printf("redis close: %v", err)
	}
	if err := db.Close(gormDB); err != nil {
		log.Printf("database close: %v", err)
	}
}
