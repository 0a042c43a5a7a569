package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Hafiizherdian/mini-e-commerce/internal/config"
	"github.com/Hafiizherdian/mini-e-commerce/internal/handler"
	"github.com/Hafiizherdian/mini-e-commerce/internal/middleware"
	"github.com/Hafiizherdian/mini-e-commerce/internal/models"
	"github.com/Hafiizherdian/mini-e-commerce/internal/repository"
	"github.com/Hafiizherdian/mini-e-commerce/internal/token"
)

// demoProfiles seeds the user directory. Registration lives in the
// auth service; this MVP does not sync the two stores.
var demoProfiles = []models.Profile{
	{ID: "testuser1", Name: "Test User One", Email: "test1@example.com"},
	{ID: "testuser2", Name: "Test User Two", Email: "test2@example.com"},
}

// UserServer serves the user directory.
type UserServer struct {
	router *gin.Engine
	logger *zap.Logger
}

func NewUserServer(cfg *config.Config, logger *zap.Logger) (*UserServer, error) {
	codec, err := token.NewCodec(cfg.Auth.Secret, cfg.DefaultTokenTTL())
	if err != nil {
		return nil, err
	}

	profileRepo := repository.NewProfileRepository(demoProfiles...)
	userHandler := handler.NewUserHandler(profileRepo, logger)

	router := gin.Default()

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	authorized := router.Group("/")
	authorized.Use(middleware.AuthMiddleware(codec, logger))
	{
		authorized.GET("/users", userHandler.GetAllUsers)
		authorized.GET("/users/:id", userHandler.GetUserByID)
		authorized.GET("/me", userHandler.GetMe)
	}

	return &UserServer{router: router, logger: logger}, nil
}

func (s *UserServer) Run(addr string) {
	s.logger.Info("User service starting", zap.String("addr", addr))
	if err := s.router.Run(addr); err != nil {
		s.logger.Fatal("User service failed to start", zap.Error(err))
	}
}
