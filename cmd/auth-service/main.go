package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/Hafiizherdian/mini-e-commerce/internal/config"
	"github.com/Hafiizherdian/mini-e-commerce/internal/server"
)

func main() {
	// Load .env if present; the JWT secret usually lives there in dev
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logrus.New()

	cfg, err := config.LoadConfig("configs/auth.yml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	srv, err := server.NewAuthServer(cfg, log, logger)
	if err != nil {
		logger.Fatal("Failed to initialize auth service", zap.Error(err))
	}

	srv.Run(cfg.Server.Port)
}
