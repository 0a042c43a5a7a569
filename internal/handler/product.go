package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Hafiizherdian/mini-e-commerce/internal/models"
	"github.com/Hafiizherdian/mini-e-commerce/internal/repository"
)

type ProductHandler interface {
	CreateProduct(c *gin.Context)
	GetAllProducts(c *gin.Context)
	GetProductByID(c *gin.Context)
}

type productHandler struct {
	productRepo repository.ProductRepository
	logger      *zap.Logger
}

func NewProductHandler(productRepo repository.ProductRepository, logger *zap.Logger) ProductHandler {
	return &productHandler{productRepo: productRepo, logger: logger}
}

type CreateProductRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
}

// CreateProduct handles POST /products
func (h *productHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := &models.Product{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Price: req.Price,
	}

	if err := h.productRepo.CreateProduct(product); err != nil {
		h.logger.Error("Failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GetAllProducts handles GET /products
func (h *productHandler) GetAllProducts(c *gin.Context) {
	products, err := h.productRepo.GetAllProducts()
	if err != nil {
		h.logger.Error("Failed to get products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProductByID handles GET /products/:id
func (h *productHandler) GetProductByID(c *gin.Context) {
	id := c.Param("id")

	product, err := h.productRepo.GetProductByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		h.logger.Error("Failed to get product", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		return
	}

	c.JSON(http.StatusOK, product)
}
