package repository

import (
	"sync"

	"github.com/Hafiizherdian/mini-e-commerce/internal/models"
)

type ProductRepository interface {
	CreateProduct(product *models.Product) error
	GetProductByID(id string) (*models.Product, error)
	GetAllProducts() ([]models.Product, error)
}

type productRepository struct {
	mu       sync.RWMutex
	products map[string]models.Product
}

// NewProductRepository creates an in-memory product store, optionally
// pre-populated. The order service seeds one with its demo catalog.
func NewProductRepository(seed ...models.Product) ProductRepository {
	products := make(map[string]models.Product, len(seed))
	for _, p := range seed {
		products[p.ID] = p
	}
	return &productRepository{products: products}
}

func (r *productRepository) CreateProduct(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products[product.ID] = *product
	return nil
}

func (r *productRepository) GetProductByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

func (r *productRepository) GetAllProducts() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, p)
	}
	return products, nil
}
