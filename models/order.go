package models

import "time"

type Order struct {
	ID        int            `json:"id"`
	UserID    int            `json:"user_id"`
	UserEmail string         `json:"user_email"`
	Products  []OrderProduct `json:"products"`
	CreatedAt time.Time      `json:"created_at"`
}

// OrderProduct is a by-value snapshot of the product at order time. Editing
// or deleting the catalog product never changes an existing order.
type OrderProduct struct {
	ID          int     `json:"id"`
	OrderID     int     `json:"order_id"`
	ProductID   int     `json:"product_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}
