package domain

import "time"

type OrderCreatedEvent struct {
	OrderID     string    `json:"orderId"`
	UserID      int64     `json:"userId"`
	TotalAmount float64   `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type OrderStatusChangedEvent struct {
	OrderID   string      `json:"orderId"`
	Status    OrderStatus `json:"status"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
