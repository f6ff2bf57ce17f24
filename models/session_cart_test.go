package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionCartAdd(t *testing.T) {
	t.Run("new product appends with quantity 1", func(t *testing.T) {
		cart := SessionCart{}.Add(5)
		assert.Equal(t, SessionCart{{ProductID: 5, Quantity: 1}}, cart)
	})

	t.Run("existing product merges instead of duplicating", func(t *testing.T) {
		cart := SessionCart{}.Add(5).Add(5)
		assert.Equal(t, SessionCart{{ProductID: 5, Quantity: 2}}, cart)
	})

	t.Run("merge does not mutate the original value", func(t *testing.T) {
		original := SessionCart{{ProductID: 5, Quantity: 1}}
		merged := original.Add(5)

		assert.Equal(t, SessionCart{{ProductID: 5, Quantity: 1}}, original)
		assert.Equal(t, SessionCart{{ProductID: 5, Quantity: 2}}, merged)
	})

	t.Run("insertion order is preserved", func(t *testing.T) {
		cart := SessionCart{}.Add(5).Add(7).Add(5).Add(3)
		assert.Equal(t, SessionCart{
			{ProductID: 5, Quantity: 2},
			{ProductID: 7, Quantity: 1},
			{ProductID: 3, Quantity: 1},
		}, cart)
	})
}

func TestSessionCartRemove(t *testing.T) {
	cart := SessionCart{
		{ProductID: 5, Quantity: 2},
		{ProductID: 7, Quantity: 1},
	}

	assert.Equal(t, SessionCart{{ProductID: 7, Quantity: 1}}, cart.Remove(5))

	t.Run("unknown product is a no-op", func(t *testing.T) {
		assert.Equal(t, SessionCart{
			{ProductID: 5, Quantity: 2},
			{ProductID: 7, Quantity: 1},
		}, cart.Remove(99))
	})
}

func TestSessionCartClear(t *testing.T) {
	cart := SessionCart{
		{ProductID: 5, Quantity: 2},
		{ProductID: 7, Quantity: 1},
	}
	assert.Empty(t, cart.Clear())
	assert.Empty(t, SessionCart{}.Clear())
}
