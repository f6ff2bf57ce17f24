package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	ID       int         `json:"id"`
	UserID   int         `json:"user_id"`
	Status   string      `json:"status"`
	Items    []OrderItem `json:"items,omitempty"`
	PlacedAt time.Time   `json:"placed_at"`
}

// OrderItem is an immutable snapshot taken from the cart at checkout time.
// UnitPrice is frozen then; later catalog price changes never move an
// order's total.
type OrderItem struct {
	ID          int             `json:"id"`
	OrderID     int             `json:"order_id"`
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func (i OrderItem) Total() decimal.Decimal {
	return LineTotal(i.Quantity, i.UnitPrice)
}

func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Total())
	}
	return total
}

// orderTransitions is the allowed-edge table of the fulfillment lifecycle:
// pending -> processing -> shipped -> delivered, with cancellation possible
// from pending or processing. Delivered and cancelled are terminal.
var orderTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

func ValidOrderStatus(status string) bool {
	_, ok := orderTransitions[status]
	return ok
}

func CanTransitionOrder(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves the order to the given status, rejecting any move not in
// the allowed-edge table with ErrInvalidTransition.
func (o *Order) Transition(to string) error {
	if !ValidOrderStatus(to) || !CanTransitionOrder(o.Status, to) {
		return ErrInvalidTransition
	}
	o.Status = to
	return nil
}
