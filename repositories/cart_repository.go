package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"loja-backend/config"
	"loja-backend/models"
)

type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

func (r *CartRepository) Create(ctx context.Context, cart *models.Cart) error {
	return config.DB.QueryRow(ctx,
		`INSERT INTO carts (user_id, status) VALUES ($1, $2) RETURNING id, created_at`,
		cart.UserID, cart.Status,
	).Scan(&cart.ID, &cart.CreatedAt)
}

func (r *CartRepository) GetByID(ctx context.Context, id int) (*models.Cart, error) {
	var cart models.Cart
	err := config.DB.QueryRow(ctx,
		`SELECT id, user_id, status, created_at FROM carts WHERE id = $1`,
		id).Scan(&cart.ID, &cart.UserID, &cart.Status, &cart.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := config.DB.Query(ctx,
		`SELECT ci.id, ci.cart_id, ci.product_id, p.name, ci.quantity, p.price, ci.created_at
		 FROM cart_items ci
		 JOIN products p ON ci.product_id = p.id
		 WHERE ci.cart_id = $1
		 ORDER BY ci.id`,
		id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(&item.ID, &item.CartID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.Price, &item.CreatedAt); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, item)
	}
	return &cart, rows.Err()
}

// AddItem creates or grows a cart line item. The stock check and the write
// happen inside one transaction with the product row locked, so concurrent
// adds against the same product cannot overshoot stock.
func (r *CartRepository) AddItem(ctx context.Context, cartID, productID, quantity int) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var stock int
	err = tx.QueryRow(ctx,
		`SELECT stock FROM products WHERE id = $1 FOR UPDATE`,
		productID).Scan(&stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrNotFound
	}
	if err != nil {
		return err
	}

	var existing int
	err = tx.QueryRow(ctx,
		`SELECT quantity FROM cart_items WHERE cart_id = $1 AND product_id = $2`,
		cartID, productID).Scan(&existing)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	newQuantity := existing + quantity
	if newQuantity > stock {
		return models.ErrInsufficientStock
	}

	if existing > 0 {
		_, err = tx.Exec(ctx,
			`UPDATE cart_items SET quantity = $1 WHERE cart_id = $2 AND product_id = $3`,
			newQuantity, cartID, productID)
	} else {
		_, err = tx.Exec(ctx,
			`INSERT INTO cart_items (cart_id, product_id, quantity) VALUES ($1, $2, $3)`,
			cartID, productID, quantity)
	}
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *CartRepository) RemoveItem(ctx context.Context, cartID, productID int) error {
	tag, err := config.DB.Exec(ctx,
		`DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2`,
		cartID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *CartRepository) UpdateStatus(ctx context.Context, cartID int, status string) error {
	tag, err := config.DB.Exec(ctx,
		`UPDATE carts SET status = $1 WHERE id = $2`, status, cartID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes the cart; its items go with it via ON DELETE CASCADE.
func (r *CartRepository) Delete(ctx context.Context, id int) error {
	tag, err := config.DB.Exec(ctx, `DELETE FROM carts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
