package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"food-delivery/internal/domain"
	"food-delivery/internal/infra"
	"food-delivery/internal/infra/email"
	rabbit "food-delivery/internal/infra/rabbitmq"
	"food-delivery/internal/repository"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrInvalidOrder  = errors.New("userId and deliveryAddress are required")
	ErrInvalidStatus = errors.New("invalid order status")
)

// PlaceOrderInput carries the checkout fields; Notes and PaymentMethod
// are optional and defaulted.
type PlaceOrderInput struct {
	UserID          int64
	DeliveryAddress string
	Notes           string
	PaymentMethod   string
}

// OrderService finalizes carts into durable orders. Checkout is not
// transactional across the cache and the document store: the cart is
// deleted only after the order insert succeeds, and a failed delete is
// not rolled back.
type OrderService struct {
	repo       repository.OrderRepository
	carts      repository.CartStore
	publisher  rabbit.PublisherInterface
	userClient infra.UserClientInterface
	mailer     email.Mailer
}

func NewOrderService(r repository.OrderRepository, carts repository.CartStore, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		repo:      r,
		carts:     carts,
		publisher: pub,
	}
}

// SetUserClient enables confirmation-email recipient lookup.
func (s *OrderService) SetUserClient(client infra.UserClientInterface) {
	s.userClient = client
}

func (s *OrderService) SetMailer(m email.Mailer) {
	s.mailer = m
}

// PlaceOrder snapshots the user's cart into a durable order, then
// clears the cart. The returned order carries its assigned identifier.
func (s *OrderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*domain.Order, error) {
	if in.UserID <= 0 || in.DeliveryAddress == "" {
		return nil, ErrInvalidOrder
	}

	cart, err := s.carts.Get(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	now := time.Now()
	order := &domain.Order{
		UserID:          in.UserID,
		Items:           append([]domain.CartItem(nil), cart.Items...),
		TotalAmount:     cart.Total,
		DeliveryAddress: in.DeliveryAddress,
		Notes:           in.Notes,
		PaymentMethod:   paymentMethod,
		Status:          domain.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Save(ctx, order); err != nil {
		return nil, err
	}

	go s.publishOrderCreated(context.Background(), order)
	go s.sendConfirmationEmail(context.Background(), order)

	// The order is already durable at this point; a failed delete
	// leaves a stale cart behind and surfaces as a store failure.
	if err := s.carts.Delete(ctx, in.UserID); err != nil {
		return nil, fmt.Errorf("clear cart after checkout: %w", err)
	}

	return order, nil
}

// GetOrdersForUser returns the user's orders, newest first. A user with
// no orders gets an empty list, not an error.
func (s *OrderService) GetOrdersForUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	orders, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// UpdateOrderStatus sets the status and refreshes updatedAt. Any valid
// status may follow any other.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status string) error {
	parsed := domain.OrderStatus(status)
	if !parsed.Valid() {
		return ErrInvalidStatus
	}

	now := time.Now()
	matched, err := s.repo.UpdateStatus(ctx, id, parsed, now)
	if err != nil {
		return err
	}
	if !matched {
		return ErrOrderNotFound
	}

	go s.publishStatusChanged(context.Background(), id, parsed, now)
	return nil
}

func (s *OrderService) publishOrderCreated(ctx context.Context, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	evt := domain.OrderCreatedEvent{
		OrderID:     order.ID.Hex(),
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, "order.created", evt); err != nil {
		log.Printf("Failed to publish order.created event: %v", err)
	}
}

func (s *OrderService) publishStatusChanged(ctx context.Context, orderID string, status domain.OrderStatus, at time.Time) {
	if s.publisher == nil {
		return
	}
	evt := domain.OrderStatusChangedEvent{
		OrderID:   orderID,
		Status:    status,
		UpdatedAt: at,
	}
	if err := s.publisher.Publish(ctx, "order.status_changed", evt); err != nil {
		log.Printf("Failed to publish order.status_changed event: %v", err)
	}
}

func (s *OrderService) sendConfirmationEmail(ctx context.Context, order *domain.Order) {
	if s.mailer == nil || s.userClient == nil {
		return
	}

	user, err := s.userClient.GetUserById(ctx, order.UserID)
	if err != nil || user == nil || user.Email == "" {
		if err != nil {
			log.Printf("Failed to resolve user %d for order confirmation: %v", order.UserID, err)
		}
		return
	}

	subject := "Order Confirmation - Food Delivery"
	content := fmt.Sprintf(
		"Dear %s,\n\nYour order %s has been placed successfully.\n\nTotal Amount: $%.2f\nDelivery Address: %s\nPayment Method: %s\n\nThank you for ordering with us!\n",
		user.Name, order.ID.Hex(), order.TotalAmount, order.DeliveryAddress, order.PaymentMethod,
	)
	if err := s.mailer.Send(user.Email, subject, content); err != nil {
		log.Printf("Failed to send confirmation email to %s: %v", user.Email, err)
	}
}
