package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"modelmatrix/internal/config"
	"modelmatrix/internal/db"
	"modelmatrix/internal/model"
	"modelmatrix/internal/repository"
)

// seedModels is the demo catalog inserted by the seed script.
var seedModels = []model.Model{
	{Name: "VisionNet Classifier", Framework: "TensorFlow", UseCase: "Image Classification", CreatedBy: "demo@modelmatrix.io"},
	{Name: "DeepVision Segmenter", Framework: "PyTorch", UseCase: "Semantic Segmentation", CreatedBy: "demo@modelmatrix.io"},
	{Name: "TextFlow Summarizer", Framework: "PyTorch", UseCase: "Text Summarization", CreatedBy: "demo@modelmatrix.io"},
	{Name: "EdgeSpeech Recognizer", Framework: "ONNX", UseCase: "Speech Recognition", CreatedBy: "demo@modelmatrix.io"},
	{Name: "TabularBoost Forecaster", Framework: "TensorFlow", UseCase: "Time Series Forecasting", CreatedBy: "demo@modelmatrix.io"},
	{Name: "FaceGuard Detector", Framework: "PyTorch", UseCase: "Face Detection", CreatedBy: "demo@modelmatrix.io"},
}

func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.New(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	defer func() { _ = db.Close(gormDB) }()

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Model{},
		&model.Purchase{},
		&model.PurchaseLog{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()

	userRepo := repository.NewUserRepository(gormDB)
	if _, err := userRepo.Upsert(ctx, &model.User{
		Email: "admin@modelmatrix.io",
		Name:  "Marketplace Admin",
		Role:  model.RoleAdmin,
	}); err != nil {
		log.Fatalf("seed admin user: %v", err)
	}
	log.Println("Seeded admin user admin@modelmatrix.io")

	modelRepo := repository.NewModelRepository(gormDB)
	seeded := 0
	for i := range seedModels {
		m := seedModels[i]
		if err := modelRepo.Create(ctx, &m); err != nil {
			log.Printf("Warning: seed model %q failed: %v", m.Name, err)
			continue
		}
		seeded++
	}

	log.Printf("Seed complete: %d/%d models inserted", seeded, len(seedModels))
}
