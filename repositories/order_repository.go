package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"loja-backend/config"
	"loja-backend/models"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create writes the order and its line-item snapshots in one transaction.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

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
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) GetByID(ctx context.Context, id int) (*models.Order, error) {
	var order models.Order
	err := config.DB.QueryRow(ctx,
		`SELECT id, user_id, status, placed_at FROM orders WHERE id = $1`,
		id).Scan(&order.ID, &order.UserID, &order.Status, &order.PlacedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := config.DB.Query(ctx,
		`SELECT oi.id, oi.order_id, oi.product_id, COALESCE(p.name, ''), oi.quantity, oi.unit_price
		 FROM order_items oi
		 LEFT JOIN products p ON oi.product_id = p.id
		 WHERE oi.order_id = $1
		 ORDER BY oi.id`,
		id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID,
			&item.ProductName, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	return &order, rows.Err()
}

// ListByUser returns a user's orders, most recent first.
func (r *OrderRepository) ListByUser(ctx context.Context, userID int) ([]models.Order, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT id, user_id, status, placed_at FROM orders
		 WHERE user_id = $1 ORDER BY placed_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.Status, &order.PlacedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) ListAll(ctx context.Context, status string, limit, offset int) ([]models.Order, int, error) {
	var total int
	var err error
	if status != "" {
		err = config.DB.QueryRow(ctx,
			`SELECT COUNT(*) FROM orders WHERE status = $1`, status).Scan(&total)
	} else {
		err = config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total)
	}
	if err != nil {
		return nil, 0, err
	}

	var rows pgx.Rows
	if status != "" {
		rows, err = config.DB.Query(ctx,
			`SELECT id, user_id, status, placed_at FROM orders
			 WHERE status = $1 ORDER BY placed_at DESC LIMIT $2 OFFSET $3`,
			status, limit, offset)
	} else {
		rows, err = config.DB.Query(ctx,
			`SELECT id, user_id, status, placed_at FROM orders
			 ORDER BY placed_at DESC LIMIT $1 OFFSET $2`,
			limit, offset)
	}
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.Status, &order.PlacedAt); err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}
	return orders, total, rows.Err()
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID int, status string) error {
	tag, err := config.DB.Exec(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2`, status, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes the order; its items go with it via ON DELETE CASCADE.
func (r *OrderRepository) Delete(ctx context.Context, id int) error {
	tag, err := config.DB.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
