package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"loja-backend/config"
	"loja-backend/models"
)

type CheckoutRepository struct{}

func NewCheckoutRepository() *CheckoutRepository {
	return &CheckoutRepository{}
}

// FinalizeOrder writes the order and its items and decrements stock in one
// transaction. Every product row is locked up front, so the stock check and
// the decrement see the same value. Name and price are re-read under the
// lock and overwrite whatever the caller snapshotted.
func (r *CheckoutRepository) FinalizeOrder(ctx context.Context, order *models.Order) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i := range order.Items {
		item := &order.Items[i]
		var stock int
		err := tx.QueryRow(ctx,
			`SELECT name, price, stock FROM products WHERE id = $1 FOR UPDATE`,
			item.ProductID,
		).Scan(&item.ProductName, &item.UnitPrice, &stock)
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrNotFound
		}
		if err != nil {
			return err
		}
		if item.Quantity > stock {
			return models.ErrInsufficientStock
		}
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO orders (user_id, status) VALUES ($1, $2) RETURNING id, placed_at`,
		order.UserID, order.Status,
	).Scan(&order.ID, &order.PlacedAt)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity, unit_price)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			item.OrderID, item.ProductID, item.Quantity, item.UnitPrice,
		).Scan(&item.ID)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`UPDATE products SET stock = stock - $1, updated_at = NOW() WHERE id = $2`,
			item.Quantity, item.ProductID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
