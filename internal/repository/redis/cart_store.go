package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"food-delivery/internal/domain"
	"food-delivery/internal/repository"

	"github.com/go-redis/redis/v8"
)

// cartTTL is the sliding expiry window: every successful write resets
// the key to a full 24 hours.
const cartTTL = 86400 * time.Second

type cartStore struct {
	rdb *redis.Client
}

func NewCartStore(rdb *redis.Client) repository.CartStore {
	return &cartStore{rdb: rdb}
}

func cartKey(userID int64) string {
	return fmt.Sprintf("cart:user:%d", userID)
}

func (s *cartStore) Get(ctx context.Context, userID int64) (*domain.Cart, error) {
	data, err := s.rdb.Get(ctx, cartKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		log.Printf("cart store get error: %v", err)
		return nil, err
	}

	var cart domain.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, fmt.Errorf("decode cart for user %d: %w", userID, err)
	}
	return &cart, nil
}

func (s *cartStore) Save(ctx context.Context, userID int64, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart for user %d: %w", userID, err)
	}
	if err := s.rdb.Set(ctx, cartKey(userID), data, cartTTL).Err(); err != nil {
		log.Printf("cart store set error: %v", err)
		return err
	}
	return nil
}

func (s *cartStore) Delete(ctx context.Context, userID int64) error {
	// Del on an absent key is a no-op, which keeps clear idempotent.
	if err := s.rdb.Del(ctx, cartKey(userID)).Err(); err != nil {
		log.Printf("cart store del error: %v", err)
		return err
	}
	return nil
}
