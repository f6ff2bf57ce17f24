package models

import "github.com/shopspring/decimal"

// SessionCart is the ephemeral, non-persisted cart kept in per-session
// state: an ordered sequence of (product id, quantity) entries. Entries are
// matched by linear scan; order of first insertion is preserved.
type SessionCart []SessionCartItem

type SessionCartItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// Add increments the quantity of an existing entry or appends a new one
// with quantity 1. It does not check stock. The receiver is never mutated;
// callers always get a fresh slice.
func (sc SessionCart) Add(productID int) SessionCart {
	for i, item := range sc {
		if item.ProductID == productID {
			next := make(SessionCart, len(sc))
			copy(next, sc)
			next[i].Quantity++
			return next
		}
	}
	next := make(SessionCart, len(sc), len(sc)+1)
	copy(next, sc)
	return append(next, SessionCartItem{ProductID: productID, Quantity: 1})
}

// Remove drops every entry matching the product id.
func (sc SessionCart) Remove(productID int) SessionCart {
	kept := SessionCart{}
	for _, item := range sc {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	return kept
}

func (sc SessionCart) Clear() SessionCart {
	return SessionCart{}
}

// SessionCartView is the enriched read model of a session cart: resolvable
// entries with their products and line totals, plus the grand total.
// Entries whose product no longer exists are absent from the view.
type SessionCartView struct {
	Items []SessionCartViewItem `json:"itens"`
	Total decimal.Decimal       `json:"total"`
}

type SessionCartViewItem struct {
	Product  Product         `json:"produto"`
	Quantity int             `json:"quantidade"`
	Total    decimal.Decimal `json:"total"`
}
