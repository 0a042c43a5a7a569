package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Hafiizherdian/mini-e-commerce/internal/config"
	"github.com/Hafiizherdian/mini-e-commerce/internal/handler"
	"github.com/Hafiizherdian/mini-e-commerce/internal/middleware"
	"github.com/Hafiizherdian/mini-e-commerce/internal/repository"
	"github.com/Hafiizherdian/mini-e-commerce/internal/token"
)

// ProductServer serves the product catalog. It never talks to the
// auth service: the shared secret is all it needs to verify tokens.
type ProductServer struct {
	router *gin.Engine
	logger *zap.Logger
}

func NewProductServer(cfg *config.Config, logger *zap.Logger) (*ProductServer, error) {
	codec, err := token.NewCodec(cfg.Auth.Secret, cfg.DefaultTokenTTL())
	if err != nil {
		return nil, err
	}

	productRepo := repository.NewProductRepository()
	productHandler := handler.NewProductHandler(productRepo, logger)

	router := gin.Default()

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	authorized := router.Group("/")
	authorized.Use(middleware.AuthMiddleware(codec, logger))
	{
		authorized.POST("/products", productHandler.CreateProduct)
		authorized.GET("/products", productHandler.GetAllProducts)
		authorized.GET("/products/:id", productHandler.GetProductByID)
	}

	return &ProductServer{router: router, logger: logger}, nil
}

func (s *ProductServer) Run(addr string) {
	s.logger.Info("Product service starting", zap.String("addr", addr))
	if err := s.router.Run(addr); err != nil {
		s.logger.Fatal("Product service failed to start", zap.Error(err))
	}
}
