package main

import (
	"context"
	"log"
	"time"

	"github.com/interviewmail/backend/internal/config"
	"github.com/interviewmail/backend/internal/database"
	"github.com/interviewmail/backend/internal/logger"
	"github.com/interviewmail/backend/internal/repositories"
	"github.com/interviewmail/backend/internal/seed"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.Connect(ctx, cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	seeder := seed.NewSeeder(db, repositories.NewSentEmailRepository(db), logger.Logger)
	if _, err := seeder.Run(ctx); err != nil {
		logger.Logger.Fatal("Failed to seed database", zap.Error(err))
	}
}
