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

// demoCatalog stands in for a product lookup against the product
// service. A real deployment would resolve prices over the wire; the
// MVP prices orders against this seeded table.
var demoCatalog = []models.Product{
	{ID: "product1_dummy_id", Name: "Laptop", Price: 1200.00},
	{ID: "product2_dummy_id", Name: "Mouse", Price: 25.00},
}

// OrderServer serves order creation and lookups.
type OrderServer struct {
	router *gin.Engine
	logger *zap.Logger
}

func NewOrderServer(cfg *config.Config, logger *zap.Logger) (*OrderServer, error) {
	codec, err := token.NewCodec(cfg.Auth.Secret, cfg.DefaultTokenTTL())
	if err != nil {
		return nil, err
	}

	orderRepo := repository.NewOrderRepository()
	catalog := repository.NewProductRepository(demoCatalog...)
	orderHandler := handler.NewOrderHandler(orderRepo, catalog, logger)

	router := gin.Default()

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	authorized := router.Group("/")
	authorized.Use(middleware.AuthMiddleware(codec, logger))
	{
		authorized.POST("/orders", orderHandler.CreateOrder)
		authorized.GET("/orders", orderHandler.GetAllOrders)
		authorized.GET("/orders/:id", orderHandler.GetOrderByID)
	}

	return &OrderServer{router: router, logger: logger}, nil
}

func (s *OrderServer) Run(addr string) {
	s.logger.Info("Order service starting", zap.String("addr", addr))
	if err := s.router.Run(addr); err != nil {
		s.logger.Fatal("Order service failed to start", zap.Error(err))
	}
}
