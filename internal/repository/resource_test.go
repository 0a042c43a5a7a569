package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hafiizherdian/mini-e-commerce/internal/models"
	"github.com/Hafiizherdian/mini-e-commerce/internal/repository"
)

func TestProductRepository(t *testing.T) {
	repo := repository.NewProductRepository()

	_, err := repo.GetProductByID("missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.CreateProduct(&models.Product{ID: "p1", Name: "Laptop", Price: 1200}))

	product, err := repo.GetProductByID("p1")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", product.Name)

	products, err := repo.GetAllProducts()
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestProductRepository_Seed(t *testing.T) {
	repo := repository.NewProductRepository(
		models.Product{ID: "p1", Name: "Laptop", Price: 1200},
		models.Product{ID: "p2", Name: "Mouse", Price: 25},
	)

	product, err := repo.GetProductByID("p2")
	require.NoError(t, err)
	assert.Equal(t, 25.0, product.Price)
}

func TestOrderRepository(t *testing.T) {
	repo := repository.NewOrderRepository()

	_, err := repo.GetOrderByID("missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	order := &models.Order{
		ID:         "o1",
		UserID:     "alice",
		Items:      []models.OrderItem{{ProductID: "p1", Quantity: 2}},
		TotalPrice: 2400,
		Status:     "pending",
	}
	require.NoError(t, repo.CreateOrder(order))

	// Mutating the caller's items must not change the stored order.
	order.Items[0].Quantity = 99

	got, err := repo.GetOrderByID("o1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.UserID)
	assert.Equal(t, 2, got.Items[0].Quantity)

	orders, err := repo.GetAllOrders()
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestProfileRepository(t *testing.T) {
	repo := repository.NewProfileRepository(
		models.Profile{ID: "testuser1", Name: "Test User One", Email: "test1@example.com"},
	)

	profile, err := repo.GetProfileByID("testuser1")
	require.NoError(t, err)
	assert.Equal(t, "Test User One", profile.Name)

	_, err = repo.GetProfileByID("missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	profiles, err := repo.GetAllProfiles()
	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}
