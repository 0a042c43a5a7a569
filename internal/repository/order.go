package repository

import (
	"sync"

	"github.com/Hafiizherdian/mini-e-commerce/internal/models"
)

type OrderRepository interface {
	CreateOrder(order *models.Order) error
	GetOrderByID(id string) (*models.Order, error)
	GetAllOrders() ([]models.Order, error)
}

type orderRepository struct {
	mu     sync.RWMutex
	orders map[string]models.Order
}

func NewOrderRepository() OrderRepository {
	return &orderRepository{orders: make(map[string]models.Order)}
}

func (r *orderRepository) CreateOrder(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *order
	stored.Items = append([]models.OrderItem(nil), order.Items...)
	r.orders[order.ID] = stored
	return nil
}

func (r *orderRepository) GetOrderByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}

	order := stored
	order.Items = append([]models.OrderItem(nil), stored.Items...)
	return &order, nil
}

func (r *orderRepository) GetAllOrders() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]models.Order, 0, len(r.orders))
	for _, stored := range r.orders {
		order := stored
		order.Items = append([]models.OrderItem(nil), stored.Items...)
		orders = append(orders, order)
	}
	return orders, nil
}
