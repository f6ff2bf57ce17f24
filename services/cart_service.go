package services

import (
	"context"

	"github.com/shopspring/decimal"

	"loja-backend/models"
	"loja-backend/repositories"
)

type CartStore interface {
	Create(ctx context.Context, cart *models.Cart) error
	GetByID(ctx context.Context, id int) (*models.Cart, error)
	AddItem(ctx context.Context, cartID, productID, quantity int) error
	RemoveItem(ctx context.Context, cartID, productID int) error
	UpdateStatus(ctx context.Context, cartID int, status string) error
	Delete(ctx context.Context, id int) error
}

type CartService struct {
	cartRepo CartStore
}

func NewCartService() *CartService {
	return &CartService{cartRepo: repositories.NewCartRepository()}
}

func NewCartServiceWith(carts CartStore) *CartService {
	return &CartService{cartRepo: carts}
}

// CreateCart opens a cart for the given owner. The owner is required; a
// cart is never created against a default user.
func (s *CartService) CreateCart(ctx context.Context, userID int) (*models.Cart, error) {
	if userID <= 0 {
		return nil, models.NewValidationError("user_id", "cart owner is required")
	}

	cart := &models.Cart{UserID: userID, Status: models.CartStatusOpen}
	if err := s.cartRepo.Create(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) GetCart(ctx context.Context, cartID int) (*models.Cart, error) {
	return s.cartRepo.GetByID(ctx, cartID)
}

// AddLineItem adds quantity units of a product to the cart. A quantity of
// zero defaults to one. The repository rejects the write with
// ErrInsufficientStock when the resulting line quantity would exceed the
// product's stock; no partial state change happens in that case.
func (s *CartService) AddLineItem(ctx context.Context, cartID, productID, quantity int) error {
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return models.NewValidationError("quantity", "quantity must be positive")
	}
	return s.cartRepo.AddItem(ctx, cartID, productID, quantity)
}

func (s *CartService) RemoveLineItem(ctx context.Context, cartID, productID int) error {
	return s.cartRepo.RemoveItem(ctx, cartID, productID)
}

func (s *CartService) CartTotal(ctx context.Context, cartID int) (decimal.Decimal, error) {
	cart, err := s.cartRepo.GetByID(ctx, cartID)
	if err != nil {
		return decimal.Zero, err
	}
	return cart.Total(), nil
}

func (s *CartService) DeleteCart(ctx context.Context, cartID int) error {
	return s.cartRepo.Delete(ctx, cartID)
}
