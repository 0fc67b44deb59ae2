package services

import (
	"context"
	"sync"
	"time"

	"food-delivery/internal/domain"
	"food-delivery/internal/repository"
)

// MemCartStore is an in-memory CartStore for tests. It copies carts on
// the way in and out, mimicking the serialize/deserialize round-trip of
// the cache.
type MemCartStore struct {
	mu    sync.Mutex
	carts map[int64]*domain.Cart
}

func NewMemCartStore() *MemCartStore {
	return &MemCartStore{carts: make(map[int64]*domain.Cart)}
}

func copyCart(cart *domain.Cart) *domain.Cart {
	return &domain.Cart{
		Items: append([]domain.CartItem(nil), cart.Items...),
		Total: cart.Total,
	}
}

func (s *MemCartStore) Get(ctx context.Context, userID int64) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[userID]
	if !ok {
		return nil, nil
	}
	return copyCart(cart), nil
}

func (s *MemCartStore) Save(ctx context.Context, userID int64, cart *domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[userID] = copyCart(cart)
	return nil
}

func (s *MemCartStore) Delete(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
	return nil
}

var _ repository.CartStore = (*MemCartStore)(nil)

func CreateTestItem(id int64, name string, price float64, quantity int) domain.CartItem {
	return domain.CartItem{
		ItemID:   id,
		ItemName: name,
		Price:    price,
		Quantity: quantity,
	}
}

func CreateTestOrder(userID int64, items []domain.CartItem, total float64, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		UserID:          userID,
		Items:           items,
		TotalAmount:     total,
		DeliveryAddress: TestAddress,
		PaymentMethod:   "cash",
		Status:          status,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}

const (
	TestUserID  = int64(1)
	TestAddress = "123 Main St"
)
