package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"food-delivery/internal/domain"
	"food-delivery/internal/services"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves the cart and order endpoints of the order
// service.
type OrderHandler struct {
	carts  *services.CartService
	orders *services.OrderService
}

func NewOrderHandler(carts *services.CartService, orders *services.OrderService) *OrderHandler {
	return &OrderHandler{carts: carts, orders: orders}
}

func (h *OrderHandler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/cart/:userId", h.GetCart)
	api.POST("/cart/:userId/items", h.AddCartItem)
	api.PUT("/cart/:userId/items/:itemId", h.UpdateCartItem)
	api.DELETE("/cart/:userId", h.ClearCart)
	api.POST("/orders", h.PlaceOrder)
	api.GET("/orders/user/:userId", h.ListUserOrders)
	api.GET("/orders/:orderId", h.GetOrder)
	api.PUT("/orders/:orderId/status", h.UpdateOrderStatus)
	r.GET("/health", Health("order-service"))
}

func userIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId"})
		return 0, false
	}
	return id, true
}

func (h *OrderHandler) GetCart(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	cart, err := h.carts.GetCart(c.Request.Context(), userID)
	if err != nil {
		log.Printf("get cart for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *OrderHandler) AddCartItem(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := h.carts.AddItem(c.Request.Context(), userID, domain.CartItem{
		ItemID:   req.ItemID,
		ItemName: req.ItemName,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		log.Printf("add cart item for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *OrderHandler) UpdateCartItem(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid itemId"})
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := h.carts.UpdateItemQuantity(c.Request.Context(), userID, itemID, *req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
			return
		}
		log.Printf("update cart item for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *OrderHandler) ClearCart(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	if err := h.carts.ClearCart(c.Request.Context(), userID); err != nil {
		log.Printf("clear cart for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "cart cleared",
		"items":   []domain.CartItem{},
		"total":   0,
	})
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.PlaceOrder(c.Request.Context(), services.PlaceOrderInput{
		UserID:          req.UserID,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidOrder):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		default:
			log.Printf("place order for user %d: %v", req.UserID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "order placed successfully",
		"orderId": order.ID.Hex(),
		"order":   order,
	})
}

func (h *OrderHandler) ListUserOrders(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	orders, err := h.orders.GetOrdersForUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("list orders for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID := c.Param("orderId")

	order, err := h.orders.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		log.Printf("get order %s: %v", orderID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("orderId")

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.orders.UpdateOrderStatus(c.Request.Context(), orderID, req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status"})
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		default:
			log.Printf("update status for order %s: %v", orderID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "order status updated",
		"status":  req.Status,
	})
}
