package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  *int            `json:"category_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Validate enforces the write invariants: stock never negative, price never
// negative, name present.
func (p *Product) Validate() error {
	if p.Name == "" {
		return NewValidationError("name", "name is required")
	}
	if p.Stock < 0 {
		return NewValidationError("stock", "stock cannot be negative")
	}
	if p.Price.IsNegative() {
		return NewValidationError("price", "price cannot be negative")
	}
	return nil
}
