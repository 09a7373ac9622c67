package port

import (
	"context"

	"github.com/rl1809/ticket-inventory/internal/core/domain"
)

// TicketStore is the contract the storage collaborator must satisfy.
// It is the only way ticket state is read or written; in particular
// ConditionalWrite is the single path that moves stock.
type TicketStore interface {
	// Fetch returns the most recently committed state for id, or
	// domain.ErrNotFound.
	Fetch(ctx context.Context, id string) (*domain.Ticket, error)

	// ConditionalWrite commits the new quantities only if the record's
	// current version equals expectedVersion. On success it returns the
	// committed record (with its new version). A stale expectedVersion
	// yields domain.ErrVersionConflict and no state change.
	ConditionalWrite(ctx context.Context, id string, expectedVersion int64, newAvailable, newSold int) (*domain.Ticket, error)

	// Update rewrites non-quantity fields (type, price). It bumps the
	// version but must never touch the quantity counters.
	Update(ctx context.Context, id string, upd domain.TicketUpdate) (*domain.Ticket, error)

	// List returns all tickets.
	List(ctx context.Context) ([]domain.Ticket, error)

	// Create persists a new ticket and assigns its id if empty. Used by
	// catalog management and seeding, never by the purchase path.
	Create(ctx context.Context, t domain.Ticket) (*domain.Ticket, error)
}
