package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Hafiizherdian/mini-e-commerce/internal/config"
	"github.com/Hafiizherdian/mini-e-commerce/internal/server"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config.LoadConfig("configs/order.yml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	srv, err := server.NewOrderServer(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize order service", zap.Error(err))
	}

	srv.Run(cfg.Server.Port)
}
