package services

import (
	"context"
	"errors"
	"log"

	"loja-backend/models"
	"loja-backend/repositories"
)

// OrderFinalizer persists a pending order atomically: product rows locked,
// stock validated and decremented, order and items written as one unit.
type OrderFinalizer interface {
	FinalizeOrder(ctx context.Context, order *models.Order) error
}

// CheckoutService turns a session cart into a pending order.
type CheckoutService struct {
	sessions SessionCartStore
	products ProductStore
	orders   OrderFinalizer
}

func NewCheckoutService() *CheckoutService {
	return NewCheckoutServiceWith(
		repositories.NewSessionCartRepository(),
		repositories.NewProductRepository(),
		repositories.NewCheckoutRepository(),
	)
}

func NewCheckoutServiceWith(sessions SessionCartStore, products ProductStore, orders OrderFinalizer) *CheckoutService {
	return &CheckoutService{sessions: sessions, products: products, orders: orders}
}

// Checkout builds an order from the stored session cart and finalizes it.
// Entries whose product no longer exists are skipped, same best-effort policy
// as the cart view. The finalizer re-reads name and price under the product
// row locks, so the snapshot reflects the catalog at commit time. The session
// cart is cleared only after the order is committed.
func (s *CheckoutService) Checkout(ctx context.Context, userID int, sessionID string) (*models.Order, error) {
	if userID <= 0 {
		return nil, models.NewValidationError("user_id", "order owner is required")
	}

	cart, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	order := &models.Order{UserID: userID, Status: models.OrderStatusPending}
	for _, entry := range cart {
		product, err := s.products.GetByID(ctx, entry.ProductID)
		if errors.Is(err, models.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		order.Items = append(order.Items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    entry.Quantity,
			UnitPrice:   product.Price,
		})
	}
	if len(order.Items) == 0 {
		return nil, models.ErrEmptyCart
	}

	if err := s.orders.FinalizeOrder(ctx, order); err != nil {
		return nil, err
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		log.Println("Failed to clear session cart after checkout:", err)
	}
	return order, nil
}
