package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a single order as returned by the orders service. Orders are
// immutable snapshots; the client replaces whole pages, it never mutates one.
type Order struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customerId"`
	CreatedAt  time.Time       `json:"createdAt"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// Page is one page of orders plus the pagination metadata that came with it.
// HasPrev and HasNext are trusted as returned by the service and never
// recomputed locally.
type Page struct {
	Orders     []Order `json:"orders"`
	Page       int     `json:"page"`
	TotalPages int     `json:"totalPages"`
	HasPrev    bool    `json:"hasPrev"`
	HasNext    bool    `json:"hasNext"`
}

// OrderDraft is the payload for creating a new order.
type OrderDraft struct {
	CustomerID string          `json:"customerId"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}
