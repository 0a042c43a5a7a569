package models

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Order represents an order stored by the order service. UserID is
// taken from the authenticated principal at creation time, never from
// the request body.
type Order struct {
	ID         string      `json:"id"`
	UserID     string      `json:"user_id"`
	Items      []OrderItem `json:"items"`
	TotalPrice float64     `json:"total_price"`
	Status     string      `json:"status"` // e.g. "pending", "completed", "cancelled"
}
