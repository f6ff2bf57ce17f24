package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineTotalExactDecimal(t *testing.T) {
	price := decimal.RequireFromString("19.99")

	// 3 x 19.99 must be exactly 59.97, no float drift.
	total := LineTotal(3, price)
	assert.True(t, total.Equal(decimal.RequireFromString("59.97")),
		"got %s", total)
}

func TestCartTotal(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{Quantity: 3, Price: decimal.RequireFromString("19.99")},
			{Quantity: 1, Price: decimal.RequireFromString("0.01")},
			{Quantity: 2, Price: decimal.RequireFromString("100.00")},
		},
	}

	assert.True(t, cart.Total().Equal(decimal.RequireFromString("259.98")),
		"got %s", cart.Total())
}

func TestCartTotalEmpty(t *testing.T) {
	assert.True(t, Cart{}.Total().IsZero())
}
