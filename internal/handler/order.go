package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Hafiizherdian/mini-e-commerce/internal/middleware"
	"github.com/Hafiizherdian/mini-e-commerce/internal/models"
	"github.com/Hafiizherdian/mini-e-commerce/internal/repository"
)

type OrderHandler interface {
	CreateOrder(c *gin.Context)
	GetAllOrders(c *gin.Context)
	GetOrderByID(c *gin.Context)
}

type orderHandler struct {
	orderRepo repository.OrderRepository
	// catalog prices order items. For this MVP it is a seeded local
	// store, not a call to the product service.
	catalog repository.ProductRepository
	logger  *zap.Logger
}

func NewOrderHandler(orderRepo repository.OrderRepository, catalog repository.ProductRepository, logger *zap.Logger) OrderHandler {
	return &orderHandler{orderRepo: orderRepo, catalog: catalog, logger: logger}
}

type CreateOrderRequest struct {
	Items []models.OrderItem `json:"items" binding:"required"`
}

// CreateOrder handles POST /orders. The order owner is the
// authenticated principal; the request body cannot choose a user.
func (h *orderHandler) CreateOrder(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var totalPrice float64
	for _, item := range req.Items {
		product, err := h.catalog.GetProductByID(item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("product with id %s not found", item.ProductID)})
				return
			}
			h.logger.Error("Failed to look up product", zap.String("product_id", item.ProductID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}
		totalPrice += product.Price * float64(item.Quantity)
	}

	order := &models.Order{
		ID:         uuid.NewString(),
		UserID:     principal.Subject,
		Items:      req.Items,
		TotalPrice: totalPrice,
		Status:     "pending",
	}

	if err := h.orderRepo.CreateOrder(order); err != nil {
		h.logger.Error("Failed to create order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetAllOrders handles GET /orders. All orders are visible to any
// authenticated user in this MVP; per-user filtering would be a
// handler-level policy on top of the principal.
func (h *orderHandler) GetAllOrders(c *gin.Context) {
	orders, err := h.orderRepo.GetAllOrders()
	if err != nil {
		h.logger.Error("Failed to get orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrderByID handles GET /orders/:id
func (h *orderHandler) GetOrderByID(c *gin.Context) {
	id := c.Param("id")

	order, err := h.orderRepo.GetOrderByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		h.logger.Error("Failed to get order", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
		return
	}

	c.JSON(http.StatusOK, order)
}
