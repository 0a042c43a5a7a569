package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/Hafiizherdian/mini-e-commerce/internal/config"
	"github.com/Hafiizherdian/mini-e-commerce/internal/handler"
	"github.com/Hafiizherdian/mini-e-commerce/internal/repository"
	"github.com/Hafiizherdian/mini-e-commerce/internal/service"
	"github.com/Hafiizherdian/mini-e-commerce/internal/token"
)

// AuthServer is the token issuer: it owns the credential store and is
// the only service that signs tokens.
type AuthServer struct {
	router *gin.Engine
	logger *zap.Logger
}

func NewAuthServer(cfg *config.Config, log *logrus.Logger, logger *zap.Logger) (*AuthServer, error) {
	codec, err := token.NewCodec(cfg.Auth.Secret, cfg.DefaultTokenTTL())
	if err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepository()
	authService := service.NewAuthService(userRepo, codec, cfg.AccessTokenTTL(), logger)
	authHandler := handler.NewAuthHandler(authService, log)

	router := gin.Default()

	// Ping route for health check
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)

	return &AuthServer{router: router, logger: logger}, nil
}

func (s *AuthServer) Run(addr string) {
	s.logger.Info("Auth service starting", zap.String("addr", addr))
	if err := s.router.Run(addr); err != nil {
		s.logger.Fatal("Auth service failed to start", zap.Error(err))
	}
}
