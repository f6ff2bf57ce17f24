package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loja-backend/models"
)

func TestOrderServicePlaceOrder(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductStore(
		models.Product{ID: 1, Name: "Caneca", Price: decimal.RequireFromString("19.99"), Stock: 10},
		models.Product{ID: 2, Name: "Camiseta", Price: decimal.RequireFromString("49.90"), Stock: 10},
	)
	orders := newFakeOrderStore()
	svc := NewOrderServiceWith(orders, products)

	order, err := svc.PlaceOrder(ctx, 7, []OrderLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 7, order.UserID)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 1, order.Items[1].Quantity)

	// 2 x 19.99 + 1 x 49.90
	assert.True(t, order.Total().Equal(decimal.RequireFromString("89.88")), "got %s", order.Total())
}

func TestOrderServicePlaceOrderSnapshotsPrice(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductStore(
		models.Product{ID: 1, Name: "Caneca", Price: decimal.RequireFromString("19.99"), Stock: 10},
	)
	svc := NewOrderServiceWith(newFakeOrderStore(), products)

	order, err := svc.PlaceOrder(ctx, 1, []OrderLine{{ProductID: 1, Quantity: 1}})
	require.NoError(t, err)

	// A later catalog price change must not move the order total.
	p := products.products[1]
	p.Price = decimal.RequireFromString("99.99")
	products.products[1] = p

	loaded, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, loaded.Total().Equal(decimal.RequireFromString("19.99")), "got %s", loaded.Total())
}

func TestOrderServicePlaceOrderValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderServiceWith(newFakeOrderStore(), newFakeProductStore())

	t.Run("missing owner", func(t *testing.T) {
		_, err := svc.PlaceOrder(ctx, 0, []OrderLine{{ProductID: 1, Quantity: 1}})
		var validationErr *models.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("empty order", func(t *testing.T) {
		_, err := svc.PlaceOrder(ctx, 1, nil)
		var validationErr *models.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("unknown product propagates as not found", func(t *testing.T) {
		_, err := svc.PlaceOrder(ctx, 1, []OrderLine{{ProductID: 99, Quantity: 1}})
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		_, err := svc.PlaceOrder(ctx, 1, []OrderLine{{ProductID: 1, Quantity: 0}})
		var validationErr *models.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestOrderServiceUpdateStatus(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductStore(
		models.Product{ID: 1, Price: decimal.RequireFromString("1.00"), Stock: 10},
	)
	orders := newFakeOrderStore()
	svc := NewOrderServiceWith(orders, products)

	order, err := svc.PlaceOrder(ctx, 1, []OrderLine{{ProductID: 1, Quantity: 1}})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, order.ID, models.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusProcessing, updated.Status)

	t.Run("illegal transition is rejected and not persisted", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, order.ID, models.OrderStatusPending)
		assert.ErrorIs(t, err, models.ErrInvalidTransition)

		loaded, err := svc.GetOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusProcessing, loaded.Status)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, 999, models.OrderStatusProcessing)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}
