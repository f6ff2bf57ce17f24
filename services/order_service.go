package services

import (
	"context"

	"loja-backend/models"
	"loja-backend/repositories"
)

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id int) (*models.Order, error)
	ListByUser(ctx context.Context, userID int) ([]models.Order, error)
	ListAll(ctx context.Context, status string, limit, offset int) ([]models.Order, int, error)
	UpdateStatus(ctx context.Context, orderID int, status string) error
	Delete(ctx context.Context, id int) error
}

// OrderLine is a (product, quantity) pair handed to PlaceOrder.
type OrderLine struct {
	ProductID int
	Quantity  int
}

type OrderService struct {
	orderRepo   OrderStore
	productRepo ProductStore
}

func NewOrderService() *OrderService {
	return &OrderService{
		orderRepo:   repositories.NewOrderRepository(),
		productRepo: repositories.NewProductRepository(),
	}
}

func NewOrderServiceWith(orders OrderStore, products ProductStore) *OrderService {
	return &OrderService{orderRepo: orders, productRepo: products}
}

// PlaceOrder creates a pending order whose items snapshot the products'
// current prices. It does not re-validate stock and does not decrement
// inventory; that belongs to the checkout path.
func (s *OrderService) PlaceOrder(ctx context.Context, userID int, lines []OrderLine) (*models.Order, error) {
	if userID <= 0 {
		return nil, models.NewValidationError("user_id", "order owner is required")
	}
	if len(lines) == 0 {
		return nil, models.NewValidationError("items", "order must have at least one item")
	}

	order := &models.Order{
		UserID: userID,
		Status: models.OrderStatusPending,
	}

	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, models.NewValidationError("quantity", "quantity must be positive")
		}

		product, err := s.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}

		order.Items = append(order.Items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   product.Price,
		})
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID int) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, orderID)
}

func (s *OrderService) ListUserOrders(ctx context.Context, userID int) ([]models.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

func (s *OrderService) ListOrders(ctx context.Context, status string, limit, offset int) ([]models.Order, int, error) {
	return s.orderRepo.ListAll(ctx, status, limit, offset)
}

// UpdateStatus advances the order through its lifecycle. Moves outside the
// allowed-edge table are rejected with ErrInvalidTransition before any
// write happens.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int, status string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Transition(status); err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, order.Status); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, orderID int) error {
	return s.orderRepo.Delete(ctx, orderID)
}
