package services

import (
	"context"
	"errors"

	"food-delivery/internal/domain"
	"food-delivery/internal/repository"
)

var ErrCartItemNotFound = errors.New("cart item not found")

// CartService maintains one ephemeral cart per user in the cache. All
// writes re-persist the whole cart, which resets its expiry window.
// The read-modify-write cycle is not atomic; concurrent writers for the
// same user are last-writer-wins at whole-cart granularity.
type CartService struct {
	store repository.CartStore
}

func NewCartService(store repository.CartStore) *CartService {
	return &CartService{store: store}
}

// GetCart returns the stored cart, or an empty cart when none exists or
// it has expired. A cache miss is never an error.
func (s *CartService) GetCart(ctx context.Context, userID int64) (*domain.Cart, error) {
	cart, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return domain.EmptyCart(), nil
	}
	return cart, nil
}

// AddItem merges an item into the user's cart, creating the cart on
// first add, and re-persists it with a fresh expiry.
func (s *CartService) AddItem(ctx context.Context, userID int64, item domain.CartItem) (*domain.Cart, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.AddItem(item)

	if err := s.store.Save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateItemQuantity sets an existing item's quantity; quantity <= 0
// removes the item. Fails with ErrCartItemNotFound when the user has no
// cart or the item is absent.
func (s *CartService) UpdateItemQuantity(ctx context.Context, userID, itemID int64, quantity int) (*domain.Cart, error) {
	cart, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartItemNotFound
	}

	if !cart.SetItemQuantity(itemID, quantity) {
		return nil, ErrCartItemNotFound
	}

	if err := s.store.Save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// ClearCart deletes the cart record; clearing an absent cart succeeds.
func (s *CartService) ClearCart(ctx context.Context, userID int64) error {
	return s.store.Delete(ctx, userID)
}
