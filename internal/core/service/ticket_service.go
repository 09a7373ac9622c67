package service

import (
	"context"
	"fmt"

	"github.com/rl1809/ticket-inventory/internal/core/domain"
	"github.com/rl1809/ticket-inventory/internal/port"
)

// TicketService serves the read side of the catalog: availability
// queries and projected ticket views, plus the non-purchase update path
// for type and price. It never touches the quantity counters.
type TicketService struct {
	store port.TicketStore
}

func NewTicketService(store port.TicketStore) *TicketService {
	return &TicketService{store: store}
}

// CheckAvailability reports how many units of id are left. Pure read.
func (s *TicketService) CheckAvailability(ctx context.Context, id string) (*domain.Availability, error) {
	ticket, err := s.store.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.Availability{
		TicketID:          ticket.ID,
		AvailableQuantity: ticket.QuantityAvailable,
		Available:         ticket.QuantityAvailable > 0,
	}, nil
}

// GetTicket returns the projected view of a single ticket.
func (s *TicketService) GetTicket(ctx context.Context, id string) (*domain.CatalogView, error) {
	ticket, err := s.store.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	view := domain.ProjectTicket(ticket)
	return &view, nil
}

// ListTickets returns projected views for the whole catalog.
func (s *TicketService) ListTickets(ctx context.Context) ([]domain.CatalogView, error) {
	tickets, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]domain.CatalogView, 0, len(tickets))
	for i := range tickets {
		views = append(views, domain.ProjectTicket(&tickets[i]))
	}
	return views, nil
}

// UpdateTicket rewrites type and/or price. Stock cannot be changed
// here; the purchase transaction owns the counters.
func (s *TicketService) UpdateTicket(ctx context.Context, id string, upd domain.TicketUpdate) (*domain.CatalogView, error) {
	if upd.Empty() {
		return nil, &domain.ValidationError{Field: "update", Reason: "at least one field is required"}
	}
	if upd.Price != nil && upd.Price.IsNegative() {
		return nil, &domain.ValidationError{Field: "price", Reason: "must not be negative"}
	}
	ticket, err := s.store.Update(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("update ticket: %w", err)
	}
	view := domain.ProjectTicket(ticket)
	return &view, nil
}
