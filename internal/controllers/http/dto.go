package http

// AddCartItemRequest intentionally leaves Quantity unconstrained: the
// initial add accepts any quantity, only later updates treat <= 0 as
// removal.
type AddCartItemRequest struct {
	ItemID   int64   `json:"itemId" binding:"required"`
	ItemName string  `json:"itemName" binding:"required"`
	Price    float64 `json:"price" binding:"min=0"`
	Quantity int     `json:"quantity"`
}

// UpdateCartItemRequest uses a pointer so an explicit quantity of 0
// (remove the item) is distinguishable from an absent field.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type PlaceOrderRequest struct {
	UserID          int64  `json:"userId" binding:"required"`
	DeliveryAddress string `json:"deliveryAddress" binding:"required"`
	Notes           string `json:"notes"`
	PaymentMethod   string `json:"paymentMethod"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SubmitRatingRequest struct {
	UserID     int64  `json:"userId" binding:"required"`
	MenuItemID int64  `json:"menuItemId" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
	Comment    string `json:"comment"`
}
