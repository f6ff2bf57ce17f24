package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CartStatusOpen      = "open"
	CartStatusFinalized = "finalized"
	CartStatusCancelled = "cancelled"
)

type Cart struct {
	ID        int        `json:"id"`
	UserID    int        `json:"user_id"`
	Status    string     `json:"status"`
	Items     []CartItem `json:"items,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// CartItem is a (product, quantity) pair owned by exactly one cart. Price is
// the product's current price, filled in by the join at read time; cart
// totals always reflect the live catalog price.
type CartItem struct {
	ID          int             `json:"id"`
	CartID      int             `json:"cart_id"`
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LineTotal is quantity times unit price, exact decimal arithmetic.
func LineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

func (i CartItem) Total() decimal.Decimal {
	return LineTotal(i.Quantity, i.Price)
}

// Total sums the line totals of every item in the cart.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Total())
	}
	return total
}
