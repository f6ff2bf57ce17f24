package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"loja-backend/config"
	"loja-backend/models"
)

type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT id, name, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*models.Category, error) {
	var cat models.Category
	err := config.DB.QueryRow(ctx,
		`SELECT id, name, created_at FROM categories WHERE id = $1`,
		id).Scan(&cat.ID, &cat.Name, &cat.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	err := config.DB.QueryRow(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id, created_at`,
		category.Name).Scan(&category.ID, &category.CreatedAt)
	if isUniqueViolation(err) {
		return models.ErrDuplicate
	}
	return err
}

func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	tag, err := config.DB.Exec(ctx,
		`UPDATE categories SET name = $1 WHERE id = $2`,
		category.Name, category.ID)
	if isUniqueViolation(err) {
		return models.ErrDuplicate
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes the category. Products referencing it survive with a null
// category (ON DELETE SET NULL in the schema).
func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	tag, err := config.DB.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
