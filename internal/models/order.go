package models

import "time"

const OrderStatusPlaced = "Placed"

type Order struct {
	ID            string      `json:"id" db:"order_id"`
	UserID        string      `json:"user_id" db:"user_id"`
	Items         []OrderItem `json:"items"`
	Subtotal      float64     `json:"subtotal" db:"subtotal"`
	Shipping      float64     `json:"shipping" db:"shipping"`
	Total         float64     `json:"total" db:"total"`
	Address       Address     `json:"address"`
	PaymentMethod string      `json:"payment_method" db:"payment_method"`
	Status        string      `json:"status" db:"status"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
}

type OrderItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"qty"`
}
