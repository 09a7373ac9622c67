package storage

import (
	"context"
	"time"

	"github.com/rl1809/ticket-inventory/internal/core/domain"
	"github.com/rl1809/ticket-inventory/internal/port"
)

// TimeoutStore bounds every store call so a stalled backend surfaces as
// a storage error instead of hanging the purchase. Conditional writes
// are detached from the caller's cancellation: once submitted, the
// outcome must be known, otherwise it is ambiguous whether stock moved.
type TimeoutStore struct {
	inner   port.TicketStore
	timeout time.Duration
}

func WithTimeout(inner port.TicketStore, timeout time.Duration) *TimeoutStore {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &TimeoutStore{inner: inner, timeout: timeout}
}

func (s *TimeoutStore) Fetch(ctx context.Context, id string) (*domain.Ticket, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.inner.Fetch(ctx, id)
}

func (s *TimeoutStore) ConditionalWrite(ctx context.Context, id string, expectedVersion int64, newAvailable, newSold int) (*domain.Ticket, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()
	return s.inner.ConditionalWrite(ctx, id, expectedVersion, newAvailable, newSold)
}

func (s *TimeoutStore) Update(ctx context.Context, id string, upd domain.TicketUpdate) (*domain.Ticket, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()
	return s.inner.Update(ctx, id, upd)
}

func (s *TimeoutStore) List(ctx context.Context) ([]domain.Ticket, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.inner.List(ctx)
}

func (s *TimeoutStore) Create(ctx context.Context, t domain.Ticket) (*domain.Ticket, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.inner.Create(ctx, t)
}
