package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loja-backend/models"
)

func TestCartServiceCreateCartRequiresOwner(t *testing.T) {
	svc := NewCartServiceWith(newFakeCartStore(newFakeProductStore()))

	_, err := svc.CreateCart(context.Background(), 0)
	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	cart, err := svc.CreateCart(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 42, cart.UserID)
	assert.Equal(t, models.CartStatusOpen, cart.Status)
}

func TestCartServiceAddLineItem(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductStore(
		models.Product{ID: 1, Name: "Caneca", Price: decimal.RequireFromString("19.99"), Stock: 5},
	)
	store := newFakeCartStore(products)
	svc := NewCartServiceWith(store)

	cart, err := svc.CreateCart(ctx, 1)
	require.NoError(t, err)

	t.Run("quantity within stock succeeds", func(t *testing.T) {
		require.NoError(t, svc.AddLineItem(ctx, cart.ID, 1, 3))

		total, err := svc.CartTotal(ctx, cart.ID)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.RequireFromString("59.97")), "got %s", total)
	})

	t.Run("quantity beyond stock is rejected with no partial write", func(t *testing.T) {
		err := svc.AddLineItem(ctx, cart.ID, 1, 3)
		assert.ErrorIs(t, err, models.ErrInsufficientStock)

		total, err := svc.CartTotal(ctx, cart.ID)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.RequireFromString("59.97")), "total changed: %s", total)
	})

	t.Run("zero quantity defaults to one", func(t *testing.T) {
		require.NoError(t, svc.AddLineItem(ctx, cart.ID, 1, 0))

		loaded, err := svc.GetCart(ctx, cart.ID)
		require.NoError(t, err)
		assert.Equal(t, 4, loaded.Items[0].Quantity)
	})

	t.Run("negative quantity is a validation error", func(t *testing.T) {
		err := svc.AddLineItem(ctx, cart.ID, 1, -2)
		var validationErr *models.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("unknown product is not found", func(t *testing.T) {
		assert.ErrorIs(t, svc.AddLineItem(ctx, cart.ID, 99, 1), models.ErrNotFound)
	})
}

func TestCartServiceRemoveLineItem(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductStore(
		models.Product{ID: 1, Price: decimal.RequireFromString("10.00"), Stock: 10},
		models.Product{ID: 2, Price: decimal.RequireFromString("5.00"), Stock: 10},
	)
	svc := NewCartServiceWith(newFakeCartStore(products))

	cart, err := svc.CreateCart(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, svc.AddLineItem(ctx, cart.ID, 1, 2))
	require.NoError(t, svc.AddLineItem(ctx, cart.ID, 2, 1))

	require.NoError(t, svc.RemoveLineItem(ctx, cart.ID, 1))

	total, err := svc.CartTotal(ctx, cart.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("5.00")), "got %s", total)
}

func TestCartServiceDeleteCart(t *testing.T) {
	ctx := context.Background()
	svc := NewCartServiceWith(newFakeCartStore(newFakeProductStore()))

	cart, err := svc.CreateCart(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCart(ctx, cart.ID))

	_, err = svc.GetCart(ctx, cart.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
