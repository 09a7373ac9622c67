package service

import (
	"strings"

	"github.com/rl1809/ticket-inventory/internal/core/domain"
)

const (
	// DefaultMaxPurchaseQuantity caps how many units one transaction may
	// buy, independent of stock on hand.
	DefaultMaxPurchaseQuantity = 100

	maxTicketIDLen = 64
)

// Validator checks the shape of a purchase request. It is stateless and
// deliberately knows nothing about stock: sufficiency can change between
// validation and commit, so it is checked inside the transaction instead.
type Validator struct {
	MaxQuantity int
}

func NewValidator(maxQuantity int) *Validator {
	if maxQuantity <= 0 {
		maxQuantity = DefaultMaxPurchaseQuantity
	}
	return &Validator{MaxQuantity: maxQuantity}
}

func (v *Validator) Validate(req domain.PurchaseRequest) error {
	if req.TicketID == "" {
		return &domain.ValidationError{Field: "ticket_id", Reason: "must not be empty"}
	}
	if len(req.TicketID) > maxTicketIDLen {
		return &domain.ValidationError{Field: "ticket_id", Reason: "too long"}
	}
	if strings.ContainsAny(req.TicketID, " \t\n\x00") {
		return &domain.ValidationError{Field: "ticket_id", Reason: "must not contain whitespace"}
	}
	if req.Quantity < 1 {
		return &domain.ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}
	if req.Quantity > v.MaxQuantity {
		return &domain.ValidationError{Field: "quantity", Reason: "exceeds purchase limit"}
	}
	return nil
}
