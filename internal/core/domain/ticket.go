package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ticket is the persisted state of one finite-capacity inventory item.
// Quantities only ever move from available to sold; their sum is fixed
// at creation. Version changes on every committed write.
type Ticket struct {
	ID                string
	Type              string
	Price             decimal.Decimal
	QuantityAvailable int
	QuantitySold      int
	Version           int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Capacity is the fixed total the record was created with.
func (t *Ticket) Capacity() int {
	return t.QuantityAvailable + t.QuantitySold
}

func (t *Ticket) SoldOut() bool {
	return t.QuantityAvailable == 0
}

// PurchaseRequest is one caller's attempt to buy units of a single ticket.
type PurchaseRequest struct {
	TicketID string
	Quantity int
}

// Receipt describes a committed purchase. RemainingAvailable comes from
// the committed record, not from what the buyer computed locally.
type Receipt struct {
	PurchaseID         string
	TicketID           string
	TicketType         string
	QuantityPurchased  int
	UnitPrice          decimal.Decimal
	TotalAmount        decimal.Decimal
	RemainingAvailable int
}

// TicketUpdate carries the mutable non-quantity fields for the catalog
// update path. Nil means leave unchanged. Quantities are deliberately
// absent: stock moves only through the purchase transaction.
type TicketUpdate struct {
	Type  *string
	Price *decimal.Decimal
}

func (u TicketUpdate) Empty() bool {
	return u.Type == nil && u.Price == nil
}

// CatalogView is the presentation-oriented projection of a Ticket.
type CatalogView struct {
	ID                string
	Type              string
	Price             decimal.Decimal
	QuantityAvailable int
	QuantitySold      int
	Available         bool
	SoldOut           bool
}

// ProjectTicket derives the catalog view. Pure function.
func ProjectTicket(t *Ticket) CatalogView {
	return CatalogView{
		ID:                t.ID,
		Type:              t.Type,
		Price:             t.Price,
		QuantityAvailable: t.QuantityAvailable,
		QuantitySold:      t.QuantitySold,
		Available:         t.QuantityAvailable > 0,
		SoldOut:           t.QuantityAvailable == 0,
	}
}

// Availability is the answer to "how many are left right now".
type Availability struct {
	TicketID          string
	AvailableQuantity int
	Available         bool
}
