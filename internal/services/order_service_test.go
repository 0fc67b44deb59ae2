package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"food-delivery/internal/domain"
	"food-delivery/internal/infra"
	"food-delivery/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func stockedCart() *domain.Cart {
	cart := domain.EmptyCart()
	cart.AddItem(CreateTestItem(1, "Pizza", 10, 2))
	cart.AddItem(CreateTestItem(2, "Burger", 5, 1))
	return cart
}

func TestOrderService_PlaceOrder(t *testing.T) {
	tests := []struct {
		name          string
		input         PlaceOrderInput
		setupMocks    func(*mocks.MockOrderRepository, *mocks.MockCartStore)
		expectedError error
		check         func(*testing.T, *domain.Order)
	}{
		{
			name:  "successful checkout snapshots the cart",
			input: PlaceOrderInput{UserID: TestUserID, DeliveryAddress: TestAddress},
			setupMocks: func(repo *mocks.MockOrderRepository, carts *mocks.MockCartStore) {
				carts.On("Get", mock.Anything, TestUserID).Return(stockedCart(), nil)
				repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
					order := args.Get(1).(*domain.Order)
					order.ID = primitive.NewObjectID()
				})
				carts.On("Delete", mock.Anything, TestUserID).Return(nil)
			},
			check: func(t *testing.T, order *domain.Order) {
				assert.False(t, order.ID.IsZero())
				assert.Equal(t, TestUserID, order.UserID)
				assert.Len(t, order.Items, 2)
				assert.InDelta(t, 25, order.TotalAmount, 1e-9)
				assert.Equal(t, domain.StatusPending, order.Status)
				assert.Equal(t, "cash", order.PaymentMethod)
				assert.Equal(t, "", order.Notes)
				assert.WithinDuration(t, time.Now(), order.CreatedAt, time.Second)
				assert.Equal(t, order.CreatedAt, order.UpdatedAt)
			},
		},
		{
			name: "explicit payment method and notes are kept",
			input: PlaceOrderInput{
				UserID:          TestUserID,
				DeliveryAddress: TestAddress,
				Notes:           "no onions",
				PaymentMethod:   "card",
			},
			setupMocks: func(repo *mocks.MockOrderRepository, carts *mocks.MockCartStore) {
				carts.On("Get", mock.Anything, TestUserID).Return(stockedCart(), nil)
				repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
				carts.On("Delete", mock.Anything, TestUserID).Return(nil)
			},
			check: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, "card", order.PaymentMethod)
				assert.Equal(t, "no onions", order.Notes)
			},
		},
		{
			name:          "missing delivery address",
			input:         PlaceOrderInput{UserID: TestUserID},
			setupMocks:    func(*mocks.MockOrderRepository, *mocks.MockCartStore) {},
			expectedError: ErrInvalidOrder,
		},
		{
			name:          "missing user id",
			input:         PlaceOrderInput{DeliveryAddress: TestAddress},
			setupMocks:    func(*mocks.MockOrderRepository, *mocks.MockCartStore) {},
			expectedError: ErrInvalidOrder,
		},
		{
			name:  "absent cart",
			input: PlaceOrderInput{UserID: TestUserID, DeliveryAddress: TestAddress},
			setupMocks: func(repo *mocks.MockOrderRepository, carts *mocks.MockCartStore) {
				carts.On("Get", mock.Anything, TestUserID).Return(nil, nil)
			},
			expectedError: ErrEmptyCart,
		},
		{
			name:  "cart with no items",
			input: PlaceOrderInput{UserID: TestUserID, DeliveryAddress: TestAddress},
			setupMocks: func(repo *mocks.MockOrderRepository, carts *mocks.MockCartStore) {
				carts.On("Get", mock.Anything, TestUserID).Return(domain.EmptyCart(), nil)
			},
			expectedError: ErrEmptyCart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockOrderRepository)
			carts := new(mocks.MockCartStore)
			publisher := new(mocks.MockPublisher)
			publisher.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).Maybe()

			tt.setupMocks(repo, carts)

			service := NewOrderService(repo, carts, publisher)
			order, err := service.PlaceOrder(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, order)
				repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
				carts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, order)
				if tt.check != nil {
					tt.check(t, order)
				}
			}

			time.Sleep(100 * time.Millisecond)
			repo.AssertExpectations(t)
			carts.AssertExpectations(t)
			publisher.AssertExpectations(t)
		})
	}
}

func TestOrderService_PlaceOrder_DeleteOnlyAfterSave(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	carts := new(mocks.MockCartStore)

	saved := false
	carts.On("Get", mock.Anything, TestUserID).Return(stockedCart(), nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(mock.Arguments) {
		saved = true
	})
	carts.On("Delete", mock.Anything, TestUserID).Return(nil).Run(func(mock.Arguments) {
		assert.True(t, saved, "cart deleted before order was persisted")
	})

	service := NewOrderService(repo, carts, nil)
	_, err := service.PlaceOrder(context.Background(), PlaceOrderInput{UserID: TestUserID, DeliveryAddress: TestAddress})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
	carts.AssertExpectations(t)
}

func TestOrderService_PlaceOrder_SaveFailureLeavesCart(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	carts := new(mocks.MockCartStore)

	carts.On("Get", mock.Anything, TestUserID).Return(stockedCart(), nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(errors.New("database error"))

	service := NewOrderService(repo, carts, nil)
	order, err := service.PlaceOrder(context.Background(), PlaceOrderInput{UserID: TestUserID, DeliveryAddress: TestAddress})

	assert.Error(t, err)
	assert.Nil(t, order)
	carts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_DeleteFailureSurfaces(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	carts := new(mocks.MockCartStore)

	carts.On("Get", mock.Anything, TestUserID).Return(stockedCart(), nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
	carts.On("Delete", mock.Anything, TestUserID).Return(errors.New("connection reset"))

	service := NewOrderService(repo, carts, nil)
	order, err := service.PlaceOrder(context.Background(), PlaceOrderInput{UserID: TestUserID, DeliveryAddress: TestAddress})

	// The order insert already happened; only the cart cleanup failed.
	assert.Error(t, err)
	assert.Nil(t, order)
	repo.AssertExpectations(t)
	carts.AssertExpectations(t)
}

func TestOrderService_PlaceOrder_SendsConfirmationEmail(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	carts := new(mocks.MockCartStore)
	userClient := new(mocks.MockUserClient)
	mailer := new(mocks.MockMailer)

	carts.On("Get", mock.Anything, TestUserID).Return(stockedCart(), nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
	carts.On("Delete", mock.Anything, TestUserID).Return(nil)
	userClient.On("GetUserById", mock.Anything, TestUserID).Return(&infra.UserInfo{
		ID:    TestUserID,
		Name:  "Alice",
		Email: "alice@example.com",
	}, nil)
	mailer.On("Send", "alice@example.com", mock.Anything, mock.Anything).Return(nil)

	service := NewOrderService(repo, carts, nil)
	service.SetUserClient(userClient)
	service.SetMailer(mailer)

	_, err := service.PlaceOrder(context.Background(), PlaceOrderInput{UserID: TestUserID, DeliveryAddress: TestAddress})
	assert.NoError(t, err)

	time.Sleep(200 * time.Millisecond)
	userClient.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestOrderService_GetOrder(t *testing.T) {
	tests := []struct {
		name          string
		orderID       string
		setupMocks    func(*mocks.MockOrderRepository)
		expectedError error
	}{
		{
			name:    "found",
			orderID: "66f0c0ffee0000000000aaaa",
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.On("FindByID", mock.Anything, "66f0c0ffee0000000000aaaa").
					Return(CreateTestOrder(TestUserID, stockedCart().Items, 25, domain.StatusPending), nil)
			},
		},
		{
			name:    "unknown id",
			orderID: "66f0c0ffee0000000000bbbb",
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.On("FindByID", mock.Anything, "66f0c0ffee0000000000bbbb").Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name:    "malformed id",
			orderID: "not-an-id",
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.On("FindByID", mock.Anything, "not-an-id").Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name:    "store failure",
			orderID: "66f0c0ffee0000000000cccc",
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.On("FindByID", mock.Anything, "66f0c0ffee0000000000cccc").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockOrderRepository)
			tt.setupMocks(repo)

			service := NewOrderService(repo, new(mocks.MockCartStore), nil)
			order, err := service.GetOrder(context.Background(), tt.orderID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedError, ErrOrderNotFound) {
					assert.ErrorIs(t, err, ErrOrderNotFound)
				}
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, order)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestOrderService_GetOrdersForUser(t *testing.T) {
	t.Run("no orders yields empty list", func(t *testing.T) {
		repo := new(mocks.MockOrderRepository)
		repo.On("FindByUser", mock.Anything, TestUserID).Return(nil, nil)

		service := NewOrderService(repo, new(mocks.MockCartStore), nil)
		orders, err := service.GetOrdersForUser(context.Background(), TestUserID)

		assert.NoError(t, err)
		assert.NotNil(t, orders)
		assert.Empty(t, orders)
	})

	t.Run("orders pass through", func(t *testing.T) {
		expected := []domain.Order{
			*CreateTestOrder(TestUserID, stockedCart().Items, 25, domain.StatusDelivered),
			*CreateTestOrder(TestUserID, stockedCart().Items, 25, domain.StatusPending),
		}
		repo := new(mocks.MockOrderRepository)
		repo.On("FindByUser", mock.Anything, TestUserID).Return(expected, nil)

		service := NewOrderService(repo, new(mocks.MockCartStore), nil)
		orders, err := service.GetOrdersForUser(context.Background(), TestUserID)

		assert.NoError(t, err)
		assert.Len(t, orders, 2)
	})
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	const orderID = "66f0c0ffee0000000000aaaa"

	t.Run("invalid status rejected before touching the store", func(t *testing.T) {
		repo := new(mocks.MockOrderRepository)

		service := NewOrderService(repo, new(mocks.MockCartStore), nil)
		err := service.UpdateOrderStatus(context.Background(), orderID, "bogus")

		assert.ErrorIs(t, err, ErrInvalidStatus)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown order", func(t *testing.T) {
		repo := new(mocks.MockOrderRepository)
		repo.On("UpdateStatus", mock.Anything, orderID, domain.StatusConfirmed, mock.AnythingOfType("time.Time")).
			Return(false, nil)

		service := NewOrderService(repo, new(mocks.MockCartStore), nil)
		err := service.UpdateOrderStatus(context.Background(), orderID, "confirmed")

		assert.ErrorIs(t, err, ErrOrderNotFound)
		repo.AssertExpectations(t)
	})

	t.Run("successful update publishes event", func(t *testing.T) {
		repo := new(mocks.MockOrderRepository)
		publisher := new(mocks.MockPublisher)
		repo.On("UpdateStatus", mock.Anything, orderID, domain.StatusOutForDelivery, mock.AnythingOfType("time.Time")).
			Return(true, nil)
		publisher.On("Publish", mock.Anything, "order.status_changed", mock.Anything).Return(nil)

		service := NewOrderService(repo, new(mocks.MockCartStore), publisher)
		err := service.UpdateOrderStatus(context.Background(), orderID, "out_for_delivery")

		assert.NoError(t, err)
		time.Sleep(100 * time.Millisecond)
		repo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("any valid status may follow any other", func(t *testing.T) {
		repo := new(mocks.MockOrderRepository)
		repo.On("UpdateStatus", mock.Anything, orderID, domain.StatusPending, mock.AnythingOfType("time.Time")).
			Return(true, nil)

		// delivered is conventionally terminal but nothing enforces it.
		service := NewOrderService(repo, new(mocks.MockCartStore), nil)
		err := service.UpdateOrderStatus(context.Background(), orderID, "pending")

		assert.NoError(t, err)
	})
}

// End-to-end checkout against a live in-memory cart: add, accumulate,
// place, verify the snapshot and that the cart is empty afterwards.
func TestOrderService_CheckoutScenario(t *testing.T) {
	store := NewMemCartStore()
	cartService := NewCartService(store)
	repo := new(mocks.MockOrderRepository)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
		order := args.Get(1).(*domain.Order)
		order.ID = primitive.NewObjectID()
	})

	ctx := context.Background()

	cart, err := cartService.AddItem(ctx, TestUserID, CreateTestItem(1, "Pizza", 10, 2))
	assert.NoError(t, err)
	assert.InDelta(t, 20, cart.Total, 1e-9)

	cart, err = cartService.AddItem(ctx, TestUserID, CreateTestItem(1, "Pizza", 10, 1))
	assert.NoError(t, err)
	assert.InDelta(t, 30, cart.Total, 1e-9)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	orderService := NewOrderService(repo, store, nil)
	order, err := orderService.PlaceOrder(ctx, PlaceOrderInput{UserID: TestUserID, DeliveryAddress: TestAddress})
	assert.NoError(t, err)
	assert.InDelta(t, 30, order.TotalAmount, 1e-9)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, cart.Items, order.Items)

	after, err := cartService.GetCart(ctx, TestUserID)
	assert.NoError(t, err)
	assert.Empty(t, after.Items)
	assert.Zero(t, after.Total)

	repo.AssertExpectations(t)
}
