package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"loja-backend/config"
	"loja-backend/models"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// CreateWithProfile inserts the user and its profile in one transaction, so a
// duplicate email or phone rolls back both rows.
func (r *UserRepository) CreateWithProfile(ctx context.Context, user *models.User, profile *models.CustomerProfile) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO users (email, password, role) VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		user.Email, user.Password, user.Role,
	).Scan(&user.ID, &user.CreatedAt)
	if isUniqueViolation(err) {
		return models.ErrDuplicate
	}
	if err != nil {
		return err
	}

	now := time.Now()
	profile.UserID = user.ID
	err = tx.QueryRow(ctx,
		`INSERT INTO customer_profiles (user_id, address, phone, birth_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at`,
		profile.UserID, profile.Address, profile.Phone, profile.BirthDate, now, now,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if isUniqueViolation(err) {
		return models.ErrDuplicate
	}
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := config.DB.QueryRow(ctx,
		`SELECT id, email, password, role, created_at FROM users WHERE email = $1`,
		email).Scan(&user.ID, &user.Email, &user.Password, &user.Role, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUserWithProfile(ctx context.Context, userID int) (*models.UserWithProfile, error) {
	var u models.UserWithProfile
	err := config.DB.QueryRow(ctx,
		`SELECT u.id, u.email, u.role,
		        COALESCE(p.address, ''), COALESCE(p.phone, ''),
		        COALESCE(p.birth_date, '0001-01-01'::date), u.created_at
		 FROM users u
		 LEFT JOIN customer_profiles p ON u.id = p.user_id
		 WHERE u.id = $1`,
		userID).Scan(&u.ID, &u.Email, &u.Role, &u.Address, &u.Phone, &u.BirthDate, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, profile *models.CustomerProfile) error {
	tag, err := config.DB.Exec(ctx,
		`UPDATE customer_profiles SET address = $1, phone = $2, birth_date = $3, updated_at = $4
		 WHERE user_id = $5`,
		profile.Address, profile.Phone, profile.BirthDate, time.Now(), profile.UserID)
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
