package services

import (
	"context"
	"errors"

	"loja-backend/models"
	"loja-backend/repositories"
)

type SessionCartStore interface {
	Get(ctx context.Context, sessionID string) (models.SessionCart, error)
	Save(ctx context.Context, sessionID string, cart models.SessionCart) error
	Delete(ctx context.Context, sessionID string) error
}

type SessionCartService struct {
	store       SessionCartStore
	productRepo ProductStore
}

func NewSessionCartService() *SessionCartService {
	return &SessionCartService{
		store:       repositories.NewSessionCartRepository(),
		productRepo: repositories.NewProductRepository(),
	}
}

func NewSessionCartServiceWith(store SessionCartStore, products ProductStore) *SessionCartService {
	return &SessionCartService{store: store, productRepo: products}
}

// AddItem bumps the quantity of the product in the session cart, or appends
// it with quantity 1. Stock is not checked on this path.
func (s *SessionCartService) AddItem(ctx context.Context, sessionID string, productID int) error {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	return s.store.Save(ctx, sessionID, cart.Add(productID))
}

// RemoveItem drops every entry for the product from the session cart.
func (s *SessionCartService) RemoveItem(ctx context.Context, sessionID string, productID int) error {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	return s.store.Save(ctx, sessionID, cart.Remove(productID))
}

func (s *SessionCartService) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

// View resolves each entry against the catalog and computes line and grand
// totals. An entry whose product no longer exists is left out of the view
// but deliberately kept in the stored cart: the display is best-effort, the
// view never mutates session state.
func (s *SessionCartService) View(ctx context.Context, sessionID string) (*models.SessionCartView, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	view := &models.SessionCartView{Items: []models.SessionCartViewItem{}}
	for _, entry := range cart {
		product, err := s.productRepo.GetByID(ctx, entry.ProductID)
		if errors.Is(err, models.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		lineTotal := models.LineTotal(entry.Quantity, product.Price)
		view.Items = append(view.Items, models.SessionCartViewItem{
			Product:  *product,
			Quantity: entry.Quantity,
			Total:    lineTotal,
		})
		view.Total = view.Total.Add(lineTotal)
	}
	return view, nil
}

// Contents returns the raw stored cart, for checkout.
func (s *SessionCartService) Contents(ctx context.Context, sessionID string) (models.SessionCart, error) {
	return s.store.Get(ctx, sessionID)
}
