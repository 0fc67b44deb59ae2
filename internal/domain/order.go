package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// Valid reports whether s is one of the fixed status values. Any valid
// status may follow any other; there is no transition graph.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is a durable snapshot of a cart taken at checkout. Items and
// TotalAmount are immutable after creation; only Status and UpdatedAt
// change.
type Order struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID          int64              `json:"userId" bson:"userId"`
	Items           []CartItem         `json:"items" bson:"items"`
	TotalAmount     float64            `json:"totalAmount" bson:"totalAmount"`
	DeliveryAddress string             `json:"deliveryAddress" bson:"deliveryAddress"`
	Notes           string             `json:"notes" bson:"notes"`
	PaymentMethod   string             `json:"paymentMethod" bson:"paymentMethod"`
	Status          OrderStatus        `json:"status" bson:"status"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}
